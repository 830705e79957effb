package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	appErrors "github.com/Titan0-08/Fitness-Web/pkg/errors"
	"github.com/Titan0-08/Fitness-Web/pkg/logger"
	"github.com/Titan0-08/Fitness-Web/pkg/utils"
)

const (
	recipeCacheKey     = "cache:recipes:published"
	defaultRecipeImage = "https://placehold.co/600x400/3d3d3d/ffffff?text=Recipe+Image"
)

// GetRecipes returns all published recipes for the client site.
func GetRecipes(c *gin.Context) {
	var recipes []models.Recipe

	if err := database.CacheGet(recipeCacheKey, &recipes); err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "recipes": recipes})
		return
	}

	err := database.DB.
		Where("status = ?", models.StatusPublished).
		Order(`"createdAt" DESC`).
		Find(&recipes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := database.CacheSet(recipeCacheKey, recipes, contentCacheTTL); err != nil {
		logger.Debug().Err(err).Msg("Recipe list cache write skipped")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recipes": recipes})
}

// GetRecipe returns a single recipe by id, recording the view for an
// authenticated caller.
func GetRecipe(c *gin.Context) {
	recipeID := c.Param("id")

	var recipe models.Recipe
	if err := database.DB.First(&recipe, "id = ?", recipeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Recipe not found"})
		return
	}

	trackContentView(c, models.ViewRecord{
		Type:        models.ViewTypeRecipe,
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.ShortDesc,
		Image:       recipe.Image,
		URL:         "/recipe/" + recipe.ID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "recipe": recipe})
}

// GetAdminRecipes returns every recipe, drafts included.
func GetAdminRecipes(c *gin.Context) {
	var recipes []models.Recipe
	if err := database.DB.Order(`"createdAt" DESC`).Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recipes": recipes})
}

type recipeInput struct {
	Title     string `json:"title"`
	ShortDesc string `json:"shortDesc"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	Image     string `json:"image"`

	PrepTime     string    `json:"prepTime"`
	CookTime     string    `json:"cookTime"`
	Servings     string    `json:"servings"`
	Category     string    `json:"category"`
	Ingredients  FlexLines `json:"ingredients"`
	Instructions FlexLines `json:"instructions"`
	Tags         FlexCSV   `json:"tags"`
}

func (in *recipeInput) validate() *appErrors.AppError {
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"shortDesc", in.ShortDesc},
		{"content", in.Content},
		{"status", in.Status},
	} {
		if f.value == "" {
			return appErrors.MissingField(f.name)
		}
	}
	return nil
}

// CreateRecipe creates a new recipe. Admin only.
func CreateRecipe(c *gin.Context) {
	var input recipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	if appErr := input.validate(); appErr != nil {
		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		return
	}

	recipe := models.Recipe{
		ID:           utils.GenerateID(),
		Title:        input.Title,
		ShortDesc:    input.ShortDesc,
		Content:      input.Content,
		Status:       models.ContentStatus(input.Status),
		Date:         input.Date,
		Image:        input.Image,
		Author:       sessionEmailOr(c, "Admin"),
		AuthorID:     c.MustGet("userId").(string),
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		Servings:     input.Servings,
		Category:     input.Category,
		Ingredients:  datatypes.NewJSONSlice[string](input.Ingredients),
		Instructions: datatypes.NewJSONSlice[string](input.Instructions),
		Tags:         datatypes.NewJSONSlice[string](input.Tags),
	}
	if recipe.Date == "" {
		recipe.Date = time.Now().Format("2006-01-02")
	}
	if recipe.Image == "" {
		recipe.Image = defaultRecipeImage
	}

	if err := database.DB.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	invalidateContentCache(recipeCacheKey)

	logger.Info().Str("recipe_id", recipe.ID).Msg("Recipe created")
	c.JSON(http.StatusCreated, gin.H{"success": true, "recipe": recipe, "message": "Recipe created successfully"})
}

// UpdateRecipe merges the supplied fields into an existing recipe,
// normalizing list-valued fields the same way create does.
func UpdateRecipe(c *gin.Context) {
	recipeID := c.Param("id")

	var data map[string]json.RawMessage
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	var recipe models.Recipe
	if err := database.DB.First(&recipe, "id = ?", recipeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Recipe not found"})
		return
	}

	updates := map[string]interface{}{"updatedAt": time.Now()}
	for _, field := range []string{"title", "shortDesc", "content", "status", "date", "image", "prepTime", "cookTime", "servings", "category"} {
		raw, ok := data[field]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid value for field: " + field})
			return
		}
		updates[field] = value
	}

	for _, field := range []string{"ingredients", "instructions"} {
		raw, ok := data[field]
		if !ok {
			continue
		}
		var lines FlexLines
		if err := json.Unmarshal(raw, &lines); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid value for field: " + field})
			return
		}
		updates[field] = datatypes.NewJSONSlice[string](lines)
	}

	if raw, ok := data["tags"]; ok {
		var tags FlexCSV
		if err := json.Unmarshal(raw, &tags); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid value for field: tags"})
			return
		}
		updates["tags"] = datatypes.NewJSONSlice[string](tags)
	}

	if err := database.DB.Model(&recipe).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	invalidateContentCache(recipeCacheKey)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recipe updated successfully"})
}

// DeleteRecipe removes a recipe.
func DeleteRecipe(c *gin.Context) {
	recipeID := c.Param("id")

	var recipe models.Recipe
	if err := database.DB.First(&recipe, "id = ?", recipeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Recipe not found"})
		return
	}

	if err := database.DB.Delete(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	invalidateContentCache(recipeCacheKey)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recipe deleted successfully"})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	appErrors "github.com/Titan0-08/Fitness-Web/pkg/errors"
	"github.com/Titan0-08/Fitness-Web/pkg/logger"
	"github.com/Titan0-08/Fitness-Web/pkg/utils"
)

const (
	defaultGroupImage  = "https://placehold.co/400x300/3b82f6/ffffff?text=Fitness+Group"
	defaultAvatarImage = "https://placehold.co/32x32/3b82f6/ffffff?text=U"
	messagePageSize    = 50
	maxMessageLength   = 2000
)

// attachCounts derives member and message counts by enumeration; no
// stored counter is authoritative.
func attachCounts(group *models.Group) error {
	err := database.DB.Model(&models.GroupMember{}).
		Where("\"groupId\" = ?", group.ID).
		Count(&group.MemberCount).Error
	if err != nil {
		return err
	}
	return database.DB.Model(&models.GroupMessage{}).
		Where("\"groupId\" = ?", group.ID).
		Count(&group.MessagesCount).Error
}

func isMember(groupID, userID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.GroupMember{}).
		Where("\"groupId\" = ? AND \"userId\" = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetGroups lists all community groups with derived counts.
func GetGroups(c *gin.Context) {
	var groups []models.Group
	if err := database.DB.Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	for i := range groups {
		if err := attachCounts(&groups[i]); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, groups)
}

type createGroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// CreateGroup creates a group and adds the creator as its first member.
func CreateGroup(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	email := sessionEmailOr(c, "")

	var input createGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	for _, f := range []struct{ name, value string }{
		{"name", input.Name},
		{"description", input.Description},
		{"category", input.Category},
	} {
		if f.value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": appErrors.MissingField(f.name).Message})
			return
		}
	}

	group := models.Group{
		ID:             utils.GenerateID(),
		Name:           input.Name,
		Description:    input.Description,
		Category:       input.Category,
		Image:          input.Image,
		CreatedBy:      userID,
		CreatedByEmail: email,
	}
	if group.Image == "" {
		group.Image = defaultGroupImage
	}

	if err := database.DB.Create(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	member := models.GroupMember{
		GroupID:   group.ID,
		UserID:    userID,
		UserEmail: email,
		JoinedAt:  time.Now(),
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	logger.Info().Str("group_id", group.ID).Str("created_by", userID).Msg("Group created")
	c.JSON(http.StatusCreated, gin.H{"id": group.ID, "success": true})
}

// GetGroup returns a single group with derived counts.
func GetGroup(c *gin.Context) {
	groupID := c.Param("id")

	var group models.Group
	if err := database.DB.First(&group, "id = ?", groupID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Group not found"})
		return
	}

	if err := attachCounts(&group); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, group)
}

// JoinGroup adds the session user to a group. The membership row's
// existence is the only membership predicate, so joining twice fails.
func JoinGroup(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	groupID := c.Param("id")

	var group models.Group
	if err := database.DB.First(&group, "id = ?", groupID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Group not found"})
		return
	}

	already, err := isMember(groupID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if already {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Already a member"})
		return
	}

	member := models.GroupMember{
		GroupID:   groupID,
		UserID:    userID,
		UserEmail: sessionEmailOr(c, ""),
		JoinedAt:  time.Now(),
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Joined group successfully"})
}

// GetGroupMessages returns the most recent 50 messages, oldest first.
// Members only.
func GetGroupMessages(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	groupID := c.Param("id")

	member, err := isMember(groupID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !member {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Not a member of this group"})
		return
	}

	var messages []models.GroupMessage
	err = database.DB.
		Where("\"groupId\" = ?", groupID).
		Order("timestamp DESC").
		Limit(messagePageSize).
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Fetched newest-first, shown oldest-first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	c.JSON(http.StatusOK, messages)
}

type postMessageInput struct {
	Content string `json:"content"`
}

// PostGroupMessage appends a message to the group log. Members only.
func PostGroupMessage(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	groupID := c.Param("id")

	member, err := isMember(groupID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !member {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Not a member of this group"})
		return
	}

	var input postMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Message content required"})
		return
	}

	content := utils.NormalizeMessage(utils.SanitizeHTML(input.Content), maxMessageLength)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Message content required"})
		return
	}

	message := models.GroupMessage{
		ID:        utils.GenerateID(),
		GroupID:   groupID,
		User:      sessionEmailOr(c, ""),
		UserID:    userID,
		Content:   content,
		Timestamp: time.Now(),
		Avatar:    defaultAvatarImage,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Real-time fan-out to connected group members
	if SocketServer != nil {
		SocketServer.BroadcastToRoom("/", groupRoom(groupID), "receive_message", gin.H{
			"message": message,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Message sent"})
}

// GetUserGroups returns the groups the session user has joined. Probes
// membership per group; fine while the total group count stays small.
func GetUserGroups(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var groups []models.Group
	if err := database.DB.Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	userGroups := make([]models.Group, 0, len(groups))
	for i := range groups {
		member, err := isMember(groups[i].ID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		if !member {
			continue
		}
		if err := attachCounts(&groups[i]); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		userGroups = append(userGroups, groups[i])
	}

	c.JSON(http.StatusOK, userGroups)
}

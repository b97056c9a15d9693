package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/models"
)

func GetPrograms(c *gin.Context) {
	query := dbFrom(c).Model(&models.Program{}).Preload("Personality")

	if personalityID := c.Query("personality"); personalityID != "" {
		query = query.Where("personality_id = ?", personalityID)
	}

	var programs []models.Program
	if err := query.Order("created_at DESC").Find(&programs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list programs", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": programs})
}

func GetProgramByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid program id"})
		return
	}

	var program models.Program
	if err := dbFrom(c).Preload("Personality").First(&program, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": program})
}

func CreateProgram(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	imageURL, err := resolveMediaURL(c, "image", "image_url", "programs")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save image", "details": err.Error()})
		return
	}

	program := models.Program{
		Title:       title,
		Description: c.PostForm("description"),
		ImageURL:    imageURL,
		Schedule:    c.PostForm("schedule"),
	}

	if v := c.PostForm("personality_id"); v != "" {
		if pid, err := strconv.ParseUint(v, 10, 64); err == nil && pid > 0 {
			id := uint(pid)
			program.PersonalityID = &id
		}
	}

	if err := dbFrom(c).Create(&program).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create program", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Program created", "data": program})
}

func UpdateProgram(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid program id"})
		return
	}

	var input struct {
		Title         *string `json:"title"`
		Description   *string `json:"description"`
		ImageURL      *string `json:"image_url"`
		Schedule      *string `json:"schedule"`
		PersonalityID *uint   `json:"personality_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := dbFrom(c)

	var program models.Program
	if err := db.First(&program, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		return
	}

	if input.Title != nil {
		program.Title = *input.Title
	}
	if input.Description != nil {
		program.Description = *input.Description
	}
	if input.ImageURL != nil {
		program.ImageURL = *input.ImageURL
	}
	if input.Schedule != nil {
		program.Schedule = *input.Schedule
	}
	if input.PersonalityID != nil {
		program.PersonalityID = input.PersonalityID
	}

	if err := db.Save(&program).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update program", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program updated", "data": program})
}

func DeleteProgram(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid program id"})
		return
	}

	db := dbFrom(c)

	var program models.Program
	if err := db.First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load program", "details": err.Error()})
		return
	}

	if err := db.Delete(&program).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete program", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted"})
}

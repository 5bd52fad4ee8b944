package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BvspHUB/PortoFabrlio/content"
	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

func newRouter(cfg Config, page *content.Content) *gin.Engine {
	salt := cfg.AccessLogSalt
	if salt == "" {
		salt = generateSalt()
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), accessLogMiddleware(salt))
	r.LoadHTMLGlob(cfg.TemplateGlob)

	r.Static("/static", cfg.StaticDir)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"content":  page,
			"tags":     page.LanguageTags(),
			"about":    page.AboutHTML(),
			"sections": viewstate.Sections,
			"active":   viewstate.Home,
			"cardVarX": viewstate.CardVarX,
			"cardVarY": viewstate.CardVarY,
			"year":     time.Now().Year(),
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

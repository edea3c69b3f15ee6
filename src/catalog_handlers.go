package main

import (
	"log"
	"net/http"
	"time"

	"ets/src/lib"
	"ets/src/models"
	"ets/src/store"

	"github.com/gin-gonic/gin"
)

const catalogCacheTTL = time.Hour

func catalogHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/categories", func(ctx *gin.Context) {
			var categories []models.Category
			if !lib.CacheGetJSON(ctx, "catalog:categories", &categories) {
				var err error
				categories, err = store.Get().GetCategories()
				if err != nil {
					log.Printf("Error retrieving Categories: %s\n", err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
					return
				}
				lib.CacheSetJSON(ctx, "catalog:categories", categories, catalogCacheTTL)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": categories, "count": len(categories)})
		}).
		GET("/cities", func(ctx *gin.Context) {
			var cities []models.City
			if !lib.CacheGetJSON(ctx, "catalog:cities", &cities) {
				var err error
				cities, err = store.Get().GetCities()
				if err != nil {
					log.Printf("Error retrieving Cities: %s\n", err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cities"})
					return
				}
				lib.CacheSetJSON(ctx, "catalog:cities", cities, catalogCacheTTL)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": cities, "count": len(cities)})
		})
	return g
}

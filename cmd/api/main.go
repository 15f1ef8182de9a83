package main

import (
	"context"
	"net/http"

	"venue-recommender/internal/cluster"
	"venue-recommender/internal/config"
	"venue-recommender/internal/handler"
	"venue-recommender/internal/repository"
	"venue-recommender/internal/search"
	"venue-recommender/internal/service"

	_ "venue-recommender/docs"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Venue Recommender API
//	@version		1.0
//	@description	Recommends the most visited tourist venue near a geographic coordinate using a pre-fitted k-means clustering model.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	// The clustering model is fitted offline and loaded once, read-only.
	blob, err := repo.GetModel(context.Background(), config.ModelName)
	if err != nil {
		log.Fatal().Err(err).Str("model", config.ModelName).Msg("cannot fetch clustering model")
	}
	model, err := cluster.Unmarshal(blob)
	if err != nil {
		log.Fatal().Err(err).Str("model", config.ModelName).Msg("cannot decode clustering model")
	}

	wikipedia := search.NewClient(nil, config.WikipediaBaseURL)

	recommendService := service.NewRecommendService(model, repo, wikipedia)

	recommendHandler := handler.NewRecommendHandler(recommendService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/venues/recommender/:coords", recommendHandler.Recommend)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}

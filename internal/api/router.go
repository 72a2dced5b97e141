package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *AuthHandler,
	bookmarkHandler *BookmarkHandler,
	exerciseHandler *ExerciseHandler,
	userHandler *UserHandler,
	jwtSecret string,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.GET("/scheduled_bookmarks_to_study/:count", bookmarkHandler.ScheduledToStudy)
		auth.POST("/scheduled_bookmarks_to_study/:count", bookmarkHandler.ScheduledToStudy)
		auth.GET("/top_bookmarks_to_study/:count", bookmarkHandler.TopToStudy)
		auth.GET("/top_bookmarks_to_study_count", bookmarkHandler.TopToStudyCount)
		auth.GET("/bookmarks_to_learn_not_scheduled", bookmarkHandler.NotScheduled)
		auth.POST("/bookmarks_to_learn_not_scheduled", bookmarkHandler.NotScheduled)
		auth.GET("/bookmarks_in_pipeline", bookmarkHandler.InPipeline)
		auth.POST("/bookmarks_in_pipeline", bookmarkHandler.InPipeline)
		auth.GET("/has_bookmarks_in_pipeline_to_review", bookmarkHandler.HasPipelineToReview)
		auth.GET("/has_bookmarks_to_review", bookmarkHandler.HasToReview)
		auth.GET("/new_bookmarks_to_study/:count", bookmarkHandler.NewToStudy)
		auth.GET("/get_total_bookmarks_in_pipeline", bookmarkHandler.TotalInPipeline)
		auth.GET("/get_exercise_log_for_bookmark/:bookmark_id", exerciseHandler.LogForBookmark)
		auth.GET("/similar_words/:bookmark_id", exerciseHandler.SimilarWords)
		auth.POST("/report_exercise_outcome", exerciseHandler.ReportOutcome)
		auth.GET("/user_details", userHandler.Details)
		auth.GET("/search_subscriptions", userHandler.Subscriptions)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}

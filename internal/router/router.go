package router

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"

	"olivier/docs"
	"olivier/internal/handlers"
	"olivier/internal/middleware"
	"olivier/internal/models"
	"olivier/internal/store"
)

type Deps struct {
	Store          *store.Store
	Logger         *slog.Logger
	Prefix         string
	RenderMarkdown bool
}

// New 创建 gin 引擎并注册全部中间件与路由
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		requestid.New(requestid.WithGenerator(uuid.NewString)),
		middleware.RequestLogger(d.Logger),
		middleware.Recovery(d.Logger),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:    []string{"Origin", "Content-Type", "Content-Encoding", "Accept-Encoding", "X-Request-ID"},
			ExposeHeaders:   []string{"X-Request-ID"},
		}),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)),
	)
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	prefix := d.Prefix
	if prefix == "" {
		prefix = "/"
	}

	itemHandler := handlers.NewItemHandler(d.Store, d.RenderMarkdown)
	userHandler := handlers.NewUserHandler(d.Store)
	statusHandler := handlers.NewStatusHandler(d.Store)

	base := r.Group(prefix)
	base.GET("/health", handlers.Health)
	base.HEAD("/health", handlers.Health)
	base.GET("/state", statusHandler.State)

	// 条目与用户 (Items & Users)
	api := base.Group("/api/v0")
	{
		api.POST("/item", itemHandler.Create)        // 发布条目
		api.GET("/item/:id", itemHandler.Get)        // 条目详情
		api.GET("/maxitem", itemHandler.Max)         // 最大 ID 条目
		api.GET("/topstories", itemHandler.List(models.CategoryStory, store.OrderTop))
		api.GET("/newstories", itemHandler.List(models.CategoryStory, store.OrderNew))
		api.GET("/topasks", itemHandler.List(models.CategoryAsk, store.OrderTop))
		api.GET("/newasks", itemHandler.List(models.CategoryAsk, store.OrderNew))

		api.POST("/user", userHandler.Create)       // 注册用户
		api.GET("/user/:id", userHandler.Get)       // 用户信息
		api.PUT("/user/:id", userHandler.Put)       // 更新或创建
		api.DELETE("/user/:id", userHandler.Delete) // 删除用户
		api.GET("/maxuser", userHandler.Max)        // 最大 ID 用户
	}

	// API 文档
	docs.SwaggerInfo.BasePath = prefix
	base.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(path.Join(prefix, "api-docs/openapi.json")))))
	base.GET("/api-docs/openapi.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})
}

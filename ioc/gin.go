package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/vibecode/internal/grading"
	"github.com/ecodeclub/vibecode/internal/interview"
	"github.com/ecodeclub/vibecode/internal/pkg/middleware"
	"github.com/ecodeclub/vibecode/internal/proctor"
	"github.com/ecodeclub/vibecode/internal/quiz"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(
	interviewHdl *interview.Handler,
	quizHdl *quiz.Handler,
	proctorHdl *proctor.Handler,
	gradingHdl *grading.Handler,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	interviewHdl.PublicRoutes(res.Engine)
	quizHdl.PublicRoutes(res.Engine)
	proctorHdl.PublicRoutes(res.Engine)
	gradingHdl.PublicRoutes(res.Engine)
	return res
}

package cmd

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/tradinghub/blog-api/internal/web"
	"github.com/tradinghub/blog-api/internal/web/blog/controller"
	"github.com/tradinghub/blog-api/internal/web/blog/dao"
	"github.com/tradinghub/blog-api/internal/web/blog/service"
	"github.com/tradinghub/blog-api/library/db/sqlite"
	"github.com/tradinghub/blog-api/library/log"
)

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long:  `http API service for trading hub`,
	Args:  gcmd.NoExtraArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize(cmd.Context(), cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		runAPI(cmd.Context())
	},
}

func runAPI(ctx context.Context) {
	db, err := sqlite.Open(ctx, gconfig.Shared.GetString("dbfile"))
	if err != nil {
		log.Logger.Panic("open database", zap.Error(err))
	}

	blogDao, err := dao.New(ctx, log.Logger.Named("dao"), db)
	if err != nil {
		log.Logger.Panic("new dao", zap.Error(err))
	}

	blogSvc, err := service.New(ctx, log.Logger.Named("service"), blogDao)
	if err != nil {
		log.Logger.Panic("new service", zap.Error(err))
	}

	if gconfig.Shared.GetBool("seed") {
		if err = blogSvc.SeedDemoPosts(ctx); err != nil {
			log.Logger.Panic("seed demo posts", zap.Error(err))
		}
	}

	blogCtl, err := controller.New(log.Logger.Named("controller"), blogSvc)
	if err != nil {
		log.Logger.Panic("new controller", zap.Error(err))
	}

	web.RunServer(gconfig.Shared.GetString("listen"), blogCtl)
}

func init() {
	apiCMD.Flags().Bool("seed", false, "load the demo corpus on startup")
	rootCMD.AddCommand(apiCMD)
}

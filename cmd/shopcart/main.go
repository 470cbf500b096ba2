package main

import (
	"context"
	"log/slog"
	"os"

	"shopcart/config"
	"shopcart/internal/delivery"
	"shopcart/internal/delivery/api"
	apimiddleware "shopcart/internal/delivery/api/middleware"
	"shopcart/internal/delivery/api/router/handler"
	logs "shopcart/internal/infra/log"
	"shopcart/internal/infra/persistence/store"
	"shopcart/internal/infra/pubsub"
	"shopcart/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewCustomerRepository,
			store.NewProductRepository,
			store.NewCategoryRepository,
			store.NewCartRepository,
			store.NewCartItemRepository,
			store.NewOrderRepository,
			store.NewOrderItemRepository,
		),
	)
}

func injectService() fx.Option {
	return pubsub.Module
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewProductService,
			impl.NewCategoryService,
			impl.NewCustomerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewProductHandler,
			handler.NewCategoryHandler,
			handler.NewCustomerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

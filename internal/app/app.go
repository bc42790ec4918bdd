package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-orders/internal/config"
	"github.com/fsdevblog/groph-orders/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/service"
	"github.com/fsdevblog/groph-orders/internal/service/psswd"
	"github.com/fsdevblog/groph-orders/internal/transport/api"
	"github.com/fsdevblog/groph-orders/internal/transport/wxpay"
	"github.com/fsdevblog/groph-orders/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	gateway := wxpay.NewClient(a.Config.WxPayBaseURL, a.Config.WxPayMode)

	services, sErr := service.Factory(
		unitOfWork,
		gateway,
		[]byte(a.Config.JWTMerchantSecret),
		psswd.PasswordHash(""),
	)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		TenantService:       services.TenantService,
		OrderService:        services.OrderService,
		PaymentService:      services.PaymentService,
		WalletService:       services.WalletService,
		VerificationService: services.VerificationService,
		MemberService:       services.MemberService,
		MerchantUserService: services.MerchantUserService,
		JWTSecretKey:        []byte(a.Config.JWTMerchantSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if serveErr := server.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errChan <- serveErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			a.Logger.WithError(shutdownErr).Error("server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.TenantRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTenantRepository(dbtx)
		},
		repoargs.StoreRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewStoreRepository(dbtx)
		},
		repoargs.CatalogRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCatalogRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentRepository(dbtx)
		},
		repoargs.WalletRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWalletRepository(dbtx)
		},
		repoargs.RechargeOrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewRechargeOrderRepository(dbtx)
		},
		repoargs.MemberRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewMemberRepository(dbtx)
		},
		repoargs.MemberAddressRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewMemberAddressRepository(dbtx)
		},
		repoargs.OrderReviewRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderReviewRepository(dbtx)
		},
		repoargs.MerchantUserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewMerchantUserRepository(dbtx)
		},
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}

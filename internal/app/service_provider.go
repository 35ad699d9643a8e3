package app

import (
	authAPI "arcade_backend/internal/api/auth"
	baccaratAPI "arcade_backend/internal/api/baccarat"
	blackjackAPI "arcade_backend/internal/api/blackjack"
	diceAPI "arcade_backend/internal/api/dice"
	feedAPI "arcade_backend/internal/api/feed"
	fortuneAPI "arcade_backend/internal/api/fortune"
	reelsAPI "arcade_backend/internal/api/reels"
	rouletteAPI "arcade_backend/internal/api/roulette"
	walletAPI "arcade_backend/internal/api/wallet"
	"arcade_backend/internal/client/insight"
	"arcade_backend/internal/client/llm"
	"arcade_backend/internal/client/scout"
	"arcade_backend/internal/config"
	"arcade_backend/internal/config/env"
	"arcade_backend/internal/config/file"
	"arcade_backend/internal/logger"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/repository/auth_repo"
	"arcade_backend/internal/repository/feed_repo"
	"arcade_backend/internal/repository/heartbeat_cache_repo"
	"arcade_backend/internal/repository/history_repo"
	"arcade_backend/internal/repository/ledger_repo"
	"arcade_backend/internal/repository/user_repo"
	"arcade_backend/internal/rng"
	"arcade_backend/internal/service"
	"arcade_backend/internal/service/auth"
	"arcade_backend/internal/service/baccarat"
	"arcade_backend/internal/service/blackjack"
	"arcade_backend/internal/service/dice"
	"arcade_backend/internal/service/feed"
	"arcade_backend/internal/service/fortune"
	"arcade_backend/internal/service/heartbeat"
	"arcade_backend/internal/service/reels"
	"arcade_backend/internal/service/roulette"
	"arcade_backend/internal/service/wallet"
	"arcade_backend/internal/ws"
	"context"
	"database/sql"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Путь к конфигу игр и тем бота
const gamesConfigPath = "config.yaml"

// Размер ленты истории раундов
const historyWindow = 20

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis, необязателен
	redisCfg    config.RedisConfig
	redisClient *goredis.Client

	// Общие части игр
	rng         rng.Source
	ledgerRepo  repository.LedgerRepository
	historyRepo repository.HistoryRepository

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Wallet bits
	walletServ service.WalletService
	walletHand *walletAPI.Handler

	// Games
	rouletteServ  service.RouletteService
	rouletteHand  *rouletteAPI.Handler
	diceServ      service.DiceService
	diceHand      *diceAPI.Handler
	baccaratServ  service.BaccaratService
	baccaratHand  *baccaratAPI.Handler
	blackjackServ service.BlackjackService
	blackjackHand *blackjackAPI.Handler
	reelsCfg      config.ReelsConfig
	reelsServ     service.ReelsService
	reelsHand     *reelsAPI.Handler

	// LLM, необязателен
	llmCfg    config.LLMConfig
	llmClient llm.Completer
	llmReady  bool

	// Feed bits
	hub      *ws.Hub
	feedRepo repository.FeedRepository
	feedServ service.FeedService
	feedHand *feedAPI.Handler

	// Fortune bits
	fortuneServ service.FortuneService
	fortuneHand *fortuneAPI.Handler

	// Heartbeat bits
	heartbeatCfg   config.HeartbeatConfig
	topicsCfg      config.TopicsConfig
	heartbeatCache repository.HeartbeatCacheRepository
	cacheDB        *sql.DB
	heartbeatServ  service.HeartbeatService

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse db dsn: " + err.Error())
		}
		poolCfg.MaxConns = sp.PgConfig().MaxConns()

		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}

		if err = dbc.Ping(ctx); err != nil {
			panic("failed to ping db: " + err.Error())
		}

		sp.dbClient = dbc
	}

	return sp.dbClient
}

func (sp *ServiceProvider) TxManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

// RedisClient nil, если Redis не настроен
func (sp *ServiceProvider) RedisClient(ctx context.Context) *goredis.Client {
	if sp.redisClient == nil && sp.RedisCfg().Enabled() {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     sp.RedisCfg().Addr(),
			Password: sp.RedisCfg().Password(),
			DB:       sp.RedisCfg().DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) RNG() rng.Source {
	if sp.rng == nil {
		sp.rng = rng.NewSecure()
	}
	return sp.rng
}

func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx), sp.TxManager(ctx))
	}
	return sp.ledgerRepo
}

// HistoryRepository в Redis, если он настроен, иначе в памяти процесса
func (sp *ServiceProvider) HistoryRepository(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		if rdb := sp.RedisClient(ctx); rdb != nil {
			sp.historyRepo = history_repo.NewRedisHistoryRepository(rdb, historyWindow)
		} else {
			sp.historyRepo = history_repo.NewMemoryHistoryRepository(historyWindow)
		}
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TxManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:       sp.AuthService(ctx),
			RefreshTTL: sp.JWTCfg().RefreshTokenDuration(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		if sp.walletServ == nil {
			sp.walletServ = wallet.NewWalletService(sp.LedgerRepository(ctx))
		}
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.walletServ})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		if sp.rouletteServ == nil {
			sp.rouletteServ = roulette.NewRouletteService(sp.LedgerRepository(ctx), sp.HistoryRepository(ctx), sp.RNG())
		}
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{Serv: sp.rouletteServ})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) DiceHandler(ctx context.Context) *diceAPI.Handler {
	if sp.diceHand == nil {
		if sp.diceServ == nil {
			sp.diceServ = dice.NewDiceService(sp.LedgerRepository(ctx), sp.HistoryRepository(ctx), sp.RNG())
		}
		sp.diceHand = diceAPI.NewHandler(diceAPI.HandlerDeps{Serv: sp.diceServ})
	}
	return sp.diceHand
}

func (sp *ServiceProvider) BaccaratHandler(ctx context.Context) *baccaratAPI.Handler {
	if sp.baccaratHand == nil {
		if sp.baccaratServ == nil {
			sp.baccaratServ = baccarat.NewBaccaratService(sp.LedgerRepository(ctx), sp.HistoryRepository(ctx), sp.RNG())
		}
		sp.baccaratHand = baccaratAPI.NewHandler(baccaratAPI.HandlerDeps{Serv: sp.baccaratServ})
	}
	return sp.baccaratHand
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		if sp.blackjackServ == nil {
			sp.blackjackServ = blackjack.NewBlackjackService(sp.LedgerRepository(ctx), sp.HistoryRepository(ctx), sp.RNG())
		}
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{Serv: sp.blackjackServ})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) ReelsCfg() config.ReelsConfig {
	if sp.reelsCfg == nil {
		cfg, err := file.NewReelsConfig(gamesConfigPath)
		if err != nil {
			panic("failed to get reels config: " + err.Error())
		}
		sp.reelsCfg = cfg
	}
	return sp.reelsCfg
}

func (sp *ServiceProvider) ReelsHandler(ctx context.Context) *reelsAPI.Handler {
	if sp.reelsHand == nil {
		if sp.reelsServ == nil {
			s, err := reels.NewReelsService(sp.LedgerRepository(ctx), sp.HistoryRepository(ctx), sp.RNG(), sp.ReelsCfg())
			if err != nil {
				panic("failed to create reels service: " + err.Error())
			}
			sp.reelsServ = s
		}
		sp.reelsHand = reelsAPI.NewHandler(reelsAPI.HandlerDeps{Serv: sp.reelsServ})
	}
	return sp.reelsHand
}

func (sp *ServiceProvider) LLMCfg() config.LLMConfig {
	if sp.llmCfg == nil {
		cfg, err := env.NewLLMConfig()
		if err != nil {
			panic("failed to get llm config: " + err.Error())
		}
		sp.llmCfg = cfg
	}
	return sp.llmCfg
}

// LLMClient nil, если LLM_ENDPOINT не задан
func (sp *ServiceProvider) LLMClient() llm.Completer {
	if !sp.llmReady {
		if sp.LLMCfg().Endpoint() != "" {
			sp.llmClient = llm.NewClient(sp.LLMCfg())
		}
		sp.llmReady = true
	}
	return sp.llmClient
}

func (sp *ServiceProvider) Hub() *ws.Hub {
	if sp.hub == nil {
		sp.hub = ws.NewHub()
	}
	return sp.hub
}

func (sp *ServiceProvider) FeedRepository(ctx context.Context) repository.FeedRepository {
	if sp.feedRepo == nil {
		sp.feedRepo = feed_repo.NewFeedRepository(sp.DBClient(ctx))
	}
	return sp.feedRepo
}

func (sp *ServiceProvider) FeedHandler(ctx context.Context) *feedAPI.Handler {
	if sp.feedHand == nil {
		if sp.feedServ == nil {
			sp.feedServ = feed.NewFeedService(sp.FeedRepository(ctx), sp.Hub(), sp.HeartbeatCfg().TitlePrefix())
		}
		sp.feedHand = feedAPI.NewHandler(feedAPI.HandlerDeps{Serv: sp.feedServ, Hub: sp.Hub()})
	}
	return sp.feedHand
}

func (sp *ServiceProvider) FortuneHandler() *fortuneAPI.Handler {
	if sp.fortuneHand == nil {
		if sp.fortuneServ == nil {
			oracle := insight.NewInsight(sp.LLMClient(), fortune.FallbackReading)
			sp.fortuneServ = fortune.NewFortuneService(sp.RNG(), oracle)
		}
		sp.fortuneHand = fortuneAPI.NewHandler(fortuneAPI.HandlerDeps{Serv: sp.fortuneServ})
	}
	return sp.fortuneHand
}

func (sp *ServiceProvider) HeartbeatCfg() config.HeartbeatConfig {
	if sp.heartbeatCfg == nil {
		cfg, err := env.NewHeartbeatConfig()
		if err != nil {
			panic("failed to get heartbeat config: " + err.Error())
		}
		sp.heartbeatCfg = cfg
	}
	return sp.heartbeatCfg
}

func (sp *ServiceProvider) TopicsCfg() config.TopicsConfig {
	if sp.topicsCfg == nil {
		cfg, err := file.NewTopicsConfig(gamesConfigPath)
		if err != nil {
			panic("failed to get heartbeat topics: " + err.Error())
		}
		sp.topicsCfg = cfg
	}
	return sp.topicsCfg
}

// HeartbeatCache SQLite файл, если задан HEARTBEAT_CACHE_PATH, иначе память процесса
func (sp *ServiceProvider) HeartbeatCache() repository.HeartbeatCacheRepository {
	if sp.heartbeatCache == nil {
		path := sp.HeartbeatCfg().CachePath()
		if path == "" {
			sp.heartbeatCache = heartbeat_cache_repo.NewMemoryRepository()
			return sp.heartbeatCache
		}

		cache, db, err := heartbeat_cache_repo.NewSQLiteRepository(path)
		if err != nil {
			// Кэш не источник истины, без файла работаем в памяти
			logger.Warn("heartbeat: sqlite cache unavailable, using memory", zap.String("path", path), zap.Error(err))
			sp.heartbeatCache = heartbeat_cache_repo.NewMemoryRepository()
			return sp.heartbeatCache
		}
		sp.heartbeatCache = cache
		sp.cacheDB = db
	}
	return sp.heartbeatCache
}

// HeartbeatService nil, если LLM не настроен: без разведчика боту нечего писать
func (sp *ServiceProvider) HeartbeatService(ctx context.Context) service.HeartbeatService {
	if sp.heartbeatServ == nil {
		c := sp.LLMClient()
		if c == nil {
			return nil
		}

		cfg := sp.HeartbeatCfg()
		s, err := heartbeat.NewHeartbeatService(
			sp.FeedRepository(ctx),
			sp.HeartbeatCache(),
			scout.NewScout(c),
			sp.Hub(),
			sp.RNG(),
			heartbeat.Options{
				Interval:     cfg.Interval(),
				InitialDelay: cfg.InitialDelay(),
				Cooldown:     cfg.Cooldown(),
				TitlePrefix:  cfg.TitlePrefix(),
				Topics:       sp.TopicsCfg().Topics(),
			},
		)
		if err != nil {
			panic("failed to create heartbeat service: " + err.Error())
		}
		sp.heartbeatServ = s
	}
	return sp.heartbeatServ
}

// BotSession сессия бота по HEARTBEAT_BOT_LOGIN. Пустая, если бот не заведён
func (sp *ServiceProvider) BotSession(ctx context.Context) model.BotSession {
	login := sp.HeartbeatCfg().BotLogin()
	if login == "" {
		return model.BotSession{}
	}
	user, err := sp.UserRepo(ctx).GetUserByLogin(ctx, login)
	if err != nil {
		logger.Warn("heartbeat: bot user not found", zap.String("login", login), zap.Error(err))
		return model.BotSession{}
	}
	return model.BotSession{UserID: user.ID}
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Logging)

		// CORS middleware. Cookies сессии ходят только на /auth, поэтому credentials разрешены
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Handle("/metrics", promhttp.Handler())

		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			pr.Get("/balance", sp.WalletHandler(ctx).Balance)

			blackjackHandler := sp.BlackjackHandler(ctx)
			pr.Route("/blackjack", func(rr chi.Router) {
				rr.Post("/deal", blackjackHandler.Deal)
				rr.Post("/hit", blackjackHandler.Hit)
				rr.Post("/stand", blackjackHandler.Stand)
				rr.Post("/double", blackjackHandler.Double)
				rr.Get("/state", blackjackHandler.State)
				rr.Get("/history", blackjackHandler.History)
			})

			baccaratHandler := sp.BaccaratHandler(ctx)
			pr.Route("/baccarat", func(rr chi.Router) {
				rr.Post("/bet", baccaratHandler.Bet)
				rr.Post("/deal", baccaratHandler.Deal)
				rr.Get("/history", baccaratHandler.History)
			})

			rouletteHandler := sp.RouletteHandler(ctx)
			pr.Route("/roulette", func(rr chi.Router) {
				rr.Post("/bet", rouletteHandler.Bet)
				rr.Post("/spin", rouletteHandler.Spin)
				rr.Get("/history", rouletteHandler.History)
			})

			diceHandler := sp.DiceHandler(ctx)
			pr.Route("/dice", func(rr chi.Router) {
				rr.Post("/bet", diceHandler.Bet)
				rr.Post("/roll", diceHandler.Roll)
				rr.Get("/history", diceHandler.History)
			})

			reelsHandler := sp.ReelsHandler(ctx)
			pr.Route("/reels", func(rr chi.Router) {
				rr.Post("/spin", reelsHandler.Spin)
				rr.Get("/history", reelsHandler.History)
			})

			feedHandler := sp.FeedHandler(ctx)
			pr.Route("/feed", func(rr chi.Router) {
				rr.Get("/", feedHandler.List)
				rr.Post("/", feedHandler.Post)
				rr.Get("/ws", feedHandler.Subscribe)
			})

			pr.Post("/fortune/draw", sp.FortuneHandler().Draw)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения. Вызывается после остановки HTTP сервера
func (sp *ServiceProvider) Close() {
	if sp.hub != nil {
		sp.hub.Shutdown()
	}
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.cacheDB != nil {
		_ = sp.cacheDB.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

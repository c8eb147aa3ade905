package deps

import (
	"context"
	"sync"
	"time"

	"expwall/internal/config"
	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
	dl "expwall/internal/core/domain/logging"
	drl "expwall/internal/core/domain/rate_limiter"
	"expwall/internal/core/domain/search"
	"expwall/internal/core/domain/viewlog"
	dbexperience "expwall/internal/db/experience"
	dbviewlog "expwall/internal/db/viewlog"
	"expwall/internal/implementations/feed"
	"expwall/internal/implementations/fingerprinter"
	"expwall/internal/implementations/identity"
	"expwall/internal/implementations/logging"
	ratelimiter "expwall/internal/implementations/rate_limiter"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	SseServer *sse.Server

	Now func() time.Time

	ExperienceRepository experience.Repository
	ViewLogRepository    viewlog.Repository

	RateLimiter drl.RateLimiter

	Fingerprinter     fingerprint.Fingerprinter
	IdentityGenerator experience.IdentityGenerator
	CreatedPublisher  experience.CreatedPublisher
	SearchEngine      *search.Engine
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.ExperienceRepository = dbexperience.NewPgxRepository(deps.DB)
	deps.ViewLogRepository = dbviewlog.NewPgxRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.Fingerprinter = fingerprinter.NewSHA256(deps.Config.FingerprintSalt)
	deps.IdentityGenerator = identity.NewUUID()
	deps.CreatedPublisher = feed.NewSSEPublisher(deps.SseServer)
	deps.SearchEngine = search.NewDefault()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	deps.SseServer.CreateStream(feed.StreamExperiences)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

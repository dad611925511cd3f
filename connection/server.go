package connection

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"randevuapi/controller"
	"randevuapi/controller/randevu"
	"randevuapi/dto"
	"randevuapi/middleware"
	"randevuapi/model"
	"randevuapi/scheduler"
	"randevuapi/services/mailer"
	"randevuapi/services/ratelimit"
	"randevuapi/services/recaptcha"

	"github.com/gin-gonic/gin"
)

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Store    ratelimit.Store
	Verifier recaptcha.Verifier
	Notifier randevu.Notifier
}

// NewRouter wires middleware and controllers.
func NewRouter(cfg *model.Config, deps Dependencies) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	router.TrustedPlatform = cfg.TrustedPlatform

	router.Use(middleware.RequestID(), gin.Logger(), middleware.Recovery())
	router.Use(middleware.CORS(cfg.CORS))
	router.NoRoute(middleware.NotFound)

	controller.StatusController(router, cfg.ServiceName)

	limiter := ratelimit.Limiter{
		Store:  deps.Store,
		Max:    cfg.RateLimit.Max,
		Window: cfg.RateLimit.Window,
	}
	randevu.RandevuController(router, middleware.RateLimit(limiter, dto.MsgTooManyRequests),
		deps.Verifier, deps.Notifier, cfg.Recaptcha.Actions)

	return router, nil
}

func StartServer() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store ratelimit.Store
	if cfg.RateLimit.RedisAddr != "" {
		rdb, err := RedisConnection(cfg.RateLimit)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		store = ratelimit.NewRedisStore(rdb, cfg.RateLimit.Window, ratelimit.WithPrefix(cfg.RateLimit.RedisPrefix))
		log.Printf("Rate limit store: redis %s", cfg.RateLimit.RedisAddr)
	} else {
		mem := ratelimit.NewMemoryStore(cfg.RateLimit.Window)
		sched, err := scheduler.StartScheduler(cfg.RateLimit.Sweep, mem)
		if err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
		store = mem
		log.Println("Rate limit store: memory")
	}

	verifier, closer, err := RecaptchaConnection(ctx, cfg.Recaptcha)
	if err != nil {
		log.Fatalf("Failed to initialize reCAPTCHA verifier: %v", err)
	}
	defer closer.Close()

	notifier := mailer.NewNotifier(mailer.NewSMTPSender(cfg.Email), cfg.Email)

	router, err := NewRouter(cfg, Dependencies{Store: store, Verifier: verifier, Notifier: notifier})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on port %s", cfg.Port)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
		return
	case <-ctx.Done():
	}

	log.Println("Shutting down, draining in-flight requests")
	if err := shutdown(srv, 10*time.Second); err != nil {
		log.Printf("Graceful shutdown incomplete: %v", err)
	}
	log.Println("Server stopped")
}

// shutdown stops accepting connections and waits up to timeout for active
// requests to finish.
func shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

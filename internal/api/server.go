package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/limbo/babiecloud/docs"
	"github.com/limbo/babiecloud/internal/service"
	"github.com/limbo/babiecloud/pkg/entity"
)

const defaultHeartbeat = 15 * time.Second

type Server struct {
	mx              *chi.Mux
	accountService  service.AccountServiceI
	tasksService    service.TasksServiceI
	moodsService    service.MoodsServiceI
	partnersService service.PartnersServiceI
	widgetsService  service.WidgetsServiceI
	jwtService      JWTServiceI
	// comment sent on idle partner streams
	heartbeat time.Duration
}

type ServicesList struct {
	AccountService  service.AccountServiceI
	TasksService    service.TasksServiceI
	MoodsService    service.MoodsServiceI
	PartnersService service.PartnersServiceI
	WidgetsService  service.WidgetsServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions.AccountService == nil || servicesOptions.JwtService == nil {
		log.Fatal("on api server provided nil dependencies")
	}
	s := &Server{
		mx:              chi.NewMux(),
		accountService:  servicesOptions.AccountService,
		tasksService:    servicesOptions.TasksService,
		moodsService:    servicesOptions.MoodsService,
		partnersService: servicesOptions.PartnersService,
		widgetsService:  servicesOptions.WidgetsService,
		jwtService:      servicesOptions.JwtService,
		heartbeat:       defaultHeartbeat,
	}
	s.MountHandlers()
	return s
}

func (s *Server) MountHandlers() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.Post("/password-reset", s.RequestPasswordReset)
			r.Post("/password-reset/confirm", s.ConfirmPasswordReset)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/me", s.Me)
			r.Put("/me/link", s.Link)
			r.Delete("/me/link", s.Unlink)

			r.Get("/tasks", s.GetTasks)
			r.Post("/tasks", s.CreateTask)
			r.Patch("/tasks/{id}", s.UpdateTask)
			r.Put("/tasks/{id}/completion", s.SetTaskCompletion)
			r.Delete("/tasks/{id}", s.DeleteTask)

			r.Get("/moods", s.GetMoods)
			r.Post("/moods", s.AddMood)

			r.Route("/partners", func(r chi.Router) {
				r.Use(RequireRole(entity.RoleSupport))
				r.Get("/", s.GetPartners)
				r.Get("/ids", s.GetPartnerIDs)
				r.Get("/stream", s.StreamPartners)
				r.Get("/{id}", s.GetPartner)
			})

			r.Get("/widgets/order", s.GetWidgetOrder)
			r.Put("/widgets/order", s.SetWidgetOrder)
			r.Get("/widgets/photo", s.GetLatestPhoto)
			r.Post("/widgets/photo", s.CreatePhotoUpload)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then waits for in-flight requests.
// Open partner streams are closed by the shutdown context.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	slog.Info("api server stopped")
	return nil
}

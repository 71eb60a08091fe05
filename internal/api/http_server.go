package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"classbook/internal/config"
	"classbook/internal/domain"
	"classbook/internal/models"
	"classbook/internal/service"

	"github.com/rs/zerolog"
)

// Services bundles the application layer the HTTP surface exposes.
type Services struct {
	Auth     *service.AuthService
	Users    *service.UserService
	Rooms    *service.RoomService
	Bookings *service.BookingService
	Reports  *service.ReportService
}

// HTTPServer serves the JSON API for the web client.
type HTTPServer struct {
	cfg    config.Config
	store  domain.Store
	svc    Services
	logger *zerolog.Logger
	server *http.Server
	login  *loginLimiter
}

func NewHTTPServer(cfg config.Config, store domain.Store, svc Services, logger *zerolog.Logger) *HTTPServer {
	srv := &HTTPServer{
		cfg:    cfg,
		store:  store,
		svc:    svc,
		logger: logger,
		login:  newLoginLimiter(cfg.RateLimit),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/register", srv.handleRegister)
	mux.HandleFunc("/api/login", srv.handleLogin)
	mux.HandleFunc("/api/logout", srv.handleLogout)

	mux.HandleFunc("/api/rooms", srv.handleListRooms)
	mux.HandleFunc("/api/rooms/create", srv.handleCreateRoom)
	mux.HandleFunc("/api/rooms/update", srv.handleUpdateRoom)
	mux.HandleFunc("/api/rooms/delete", srv.handleDeleteRoom)

	mux.HandleFunc("/api/bookings", srv.handleListBookings)
	mux.HandleFunc("/api/bookings/create", srv.handleCreateBooking)
	mux.HandleFunc("/api/bookings/delete", srv.handleDeleteBooking)

	mux.HandleFunc("/api/users", srv.handleListUsers)
	mux.HandleFunc("/api/users/update", srv.handleUpdateUser)
	mux.HandleFunc("/api/users/delete", srv.handleDeleteUser)
	mux.HandleFunc("/api/profile/update", srv.handleUpdateProfile)

	mux.HandleFunc("/api/dashboard", srv.handleDashboard)
	mux.HandleFunc("/api/profile/history", srv.handleProfileHistory)
	mux.HandleFunc("/api/export/bookings", srv.handleExportBookings)
	mux.HandleFunc("/healthz", srv.handleHealthz)

	srv.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           requestMiddleware(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}
	return srv
}

// Handler exposes the wired routing stack for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("http server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// currentUser resolves the caller from the session cookie. Missing,
// unknown or expired sessions yield nil; the services decide what nil
// is allowed to do.
func (s *HTTPServer) currentUser(r *http.Request) *models.User {
	cookie, err := r.Cookie(s.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	user, err := s.svc.Auth.ResolveIdentity(r.Context(), cookie.Value)
	if err != nil {
		s.logger.Error().Err(err).Msg("session lookup failed")
		return nil
	}
	return user
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

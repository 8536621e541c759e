package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	authmw "github.com/nirvachan/onoe-sim/internal/auth/middleware"
	"github.com/nirvachan/onoe-sim/internal/commentary"
	"github.com/nirvachan/onoe-sim/internal/dataset"
	"github.com/nirvachan/onoe-sim/internal/impact"
	"github.com/nirvachan/onoe-sim/internal/pressure"
	"github.com/nirvachan/onoe-sim/internal/rbac"
	"github.com/nirvachan/onoe-sim/internal/seat"
	"github.com/nirvachan/onoe-sim/internal/storage"
)

type Deps struct {
	Store        seat.Store
	Commentary   *commentary.Service
	Stakeholders []pressure.Stakeholder
	Reseeder     *dataset.Reseeder // nil or empty AdminHash disables /api/admin
	Events       LatestEvent       // nil disables /api/dataset/status
	Blobs        storage.BlobStore // nil disables /api/dataset/snapshots
	Auth         *authmw.AuthService
	AdminUser    string
	AdminHash    string
	CORSOrigins  []string
	Logger       *zap.Logger
}

func NewRouter(d Deps) chi.Router {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(log), middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// admin routes exist only with a configured admin password
	adminEnabled := d.Reseeder != nil && d.Auth != nil && d.AdminHash != ""

	sim := impact.NewService(d.Store, log)
	talk := d.Commentary
	if talk == nil {
		talk = commentary.NewService(nil, commentary.Options{Logger: log})
	}
	r.Route("/api", func(ar chi.Router) {
		ar.Get("/seats/id/{seatID}", GetSeatHandler(d.Store))
		ar.Get("/seats/{level}", ListSeatsHandler(d.Store))
		ar.Post("/simulate", SimulateHandler(sim))
		ar.Post("/ai-analyze", AnalyzeHandler(talk))
		ar.Get("/stakeholders", StakeholdersHandler(d.Stakeholders))
		ar.Get("/stakeholders/pressure", PressureHandler(d.Stakeholders))
		if d.Events != nil {
			ar.Get("/dataset/status", DatasetStatusHandler(d.Events))
		}
		if d.Blobs != nil {
			ar.Get("/dataset/snapshots/{name}", SnapshotHandler(d.Blobs))
		}

		if adminEnabled {
			ar.Group(func(pr chi.Router) {
				pr.Use(authmw.JWTMiddleware(d.Auth))
				pr.With(rbac.Require("dataset:reseed")).
					Post("/admin/reseed", ReseedHandler(d.Reseeder))
			})
		}
	})

	if adminEnabled {
		r.Post("/auth/login", authmw.LoginHandler(d.Auth, d.AdminUser, d.AdminHash))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}

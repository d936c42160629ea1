package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/binbuddy/tracker/internal/error_values"
	"github.com/binbuddy/tracker/internal/service"
	"github.com/binbuddy/tracker/pkg/entity"
	"github.com/binbuddy/tracker/pkg/httputil"
)

type LogItemRequest struct {
	CategoryID string `json:"categoryId"`
	ItemID     string `json:"itemId"`
	PhotoURI   string `json:"photoUri,omitempty"`
}

type LogCustomItemRequest struct {
	Name          string `json:"name"`
	Material      string `json:"material"`
	Disposal      string `json:"disposal"`
	CategoryID    string `json:"categoryId,omitempty"`
	RiskHuman     string `json:"riskHuman,omitempty"`
	RiskAnimal    string `json:"riskAnimal,omitempty"`
	RiskEnv       string `json:"riskEnv,omitempty"`
	Decomposition string `json:"decomposition,omitempty"`
	EcoFact       string `json:"ecoFact,omitempty"`
	Points        int    `json:"points"`
	PhotoURI      string `json:"photoUri,omitempty"`
}

type LogItemResponse struct {
	Entry    entity.LogEntry      `json:"entry"`
	Unlocked []entity.Achievement `json:"newAchievements"`
}

type UpdateSettingsRequest struct {
	DarkMode bool `json:"darkMode"`
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.trackerService.Stats())
}

func (s *Server) GetLog(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.trackerService.Log())
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.trackerService.Achievements())
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.trackerService.Settings())
}

func (s *Server) LogItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LogItemRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log item error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.trackerService.LogItem(ctx, req.CategoryID, req.ItemID, req.PhotoURI)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCategoryNotFound):
			logger.Error("log item error: unknown category", slog.String("category_id", req.CategoryID))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "category doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrItemNotFound):
			logger.Error("log item error: unknown item", slog.String("item_id", req.ItemID))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
		default:
			logger.Error("log item error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging item", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, LogItemResponse{
		Entry:    result.Entry,
		Unlocked: result.Unlocked,
	})
	logger.Info("item logged", slog.String("entry_id", result.Entry.ID), slog.Int("new_achievements", len(result.Unlocked)))
}

func (s *Server) LogCustomItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LogCustomItemRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log custom item error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.trackerService.LogCustomItem(ctx, &service.CustomItemRequest{
		Name:          req.Name,
		Material:      req.Material,
		Disposal:      req.Disposal,
		CategoryID:    req.CategoryID,
		RiskHuman:     req.RiskHuman,
		RiskAnimal:    req.RiskAnimal,
		RiskEnv:       req.RiskEnv,
		Decomposition: req.Decomposition,
		EcoFact:       req.EcoFact,
		Points:        req.Points,
		PhotoURI:      req.PhotoURI,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidItem):
			logger.Error("log custom item error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid custom item", err)
		case errors.Is(err, errorvalues.ErrCategoryNotFound):
			logger.Error("log custom item error: unknown category", slog.String("category_id", req.CategoryID))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "category doesn't exist", nil)
		default:
			logger.Error("log custom item error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging custom item", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, LogItemResponse{
		Entry:    result.Entry,
		Unlocked: result.Unlocked,
	})
	logger.Info("custom item logged", slog.String("entry_id", result.Entry.ID))
}

func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req UpdateSettingsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update settings error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.trackerService.SetDarkMode(ctx, req.DarkMode)
	if err != nil {
		logger.Error("update settings error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.trackerService.Settings())
	logger.Info("settings updated")
}

func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.catalog.Categories())
}

func (s *Server) GetCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	category, err := s.catalog.Category(r.PathValue("id"))
	if err != nil {
		logger.Error("get category error: unknown category", slog.String("category_id", r.PathValue("id")))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "category doesn't exist", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, category)
}

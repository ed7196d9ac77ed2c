package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/ranking"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
)

func filterParams(r *http.Request) insighting.FilterParams {
	query := r.URL.Query()
	return insighting.FilterParams{
		Timeframe: query.Get("timeframe"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Activity:  query.Get("activity"),
	}
}

// GetDailyStats retorna os registros diários, opcionalmente filtrados
func GetDailyStats(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filters, err := insighting.ParseFilters(filterParams(r), time.Now())
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("stats: filtros inválidos")
			writeUsecaseError(w, err)
			return
		}

		records, err := service.GetDailyStats(ctx, filters)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, records)
	}
}

// GetDashboardReport retorna os blocos derivados do painel
func GetDashboardReport(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filters, err := insighting.ParseFilters(filterParams(r), time.Now())
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("report: filtros inválidos")
			writeUsecaseError(w, err)
			return
		}

		report, err := service.GetDashboardReport(ctx, filters)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetLatestDigest retorna o último resumo gerado pelo agendador
func GetLatestDigest(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		digest, err := service.GetLatestDigest(r.Context())
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, digest)
	}
}

// GetTopDays retorna os dias com mais conversas
func GetTopDays(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filters, err := insighting.ParseFilters(filterParams(r), time.Now())
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro", nil)
				return
			}
		}

		days, err := service.GetTopDays(ctx, filters, limit)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, days)
	}
}

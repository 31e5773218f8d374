package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/somework/landing-api/pkg/apiErrors"
)

const (
	CronJobTypeDashboards   = "dashboards"
	CronJobTypeThreadsToken = "threads-token"
)

// ManualSyncer job agendado que também pode ser disparado pelo painel
type ManualSyncer interface {
	TriggerManualSync() (string, bool)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DashboardRefreshService ManualSyncer
	TokenRefreshService     ManualSyncer
}

func (s CronJobServices) byType(cronType string) ManualSyncer {
	switch cronType {
	case CronJobTypeDashboards:
		return s.DashboardRefreshService
	case CronJobTypeThreadsToken:
		return s.TokenRefreshService
	default:
		return nil
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		service := services.byType(cronType)
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboards, threads-token", nil)
			return
		}

		runID, started := service.TriggerManualSync()
		logrus.WithFields(logrus.Fields{
			"type":    cronType,
			"run_id":  runID,
			"started": started,
		}).Info("Execução manual de cron job solicitada")

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já em andamento ou desabilitada"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"run_id":  runID,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for _, cronType := range []string{CronJobTypeDashboards, CronJobTypeThreadsToken} {
			if service := services.byType(cronType); service != nil {
				status[cronType] = service.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}

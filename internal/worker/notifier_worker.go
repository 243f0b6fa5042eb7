package worker

import (
	"github.com/castilloConsultoresuy/turnolistov2/internal/service"
)

// StartNotifierWorker registers display notification handlers.
func StartNotifierWorker(notifier *service.NotifierService) {
	if notifier == nil {
		return
	}
	notifier.RegisterHandlers()
}

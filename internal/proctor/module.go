package proctor

import "github.com/ecodeclub/vibecode/internal/proctor/internal/event"

type Module struct {
	Svc TrustService
	Hdl *Handler
	C   *event.BehaviorEventConsumer
}

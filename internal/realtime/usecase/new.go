package usecase

import (
	"context"
	"encoding/json"
	"time"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/realtime"
	"isp-dashboard/pkg/log"

	"github.com/friendsofgo/errors"
)

type implUseCase struct {
	hub     *Hub
	limiter *rateLimiter
	cfg     realtime.Config
	logger  log.Logger
	clock   func() time.Time
}

// New creates the realtime usecase. metrics may be nil.
func New(logger log.Logger, cfg realtime.Config, metrics *Metrics) realtime.UseCase {
	return &implUseCase{
		hub:     newHub(logger, cfg, metrics),
		limiter: newRateLimiter(cfg.ConnectRate, cfg.ConnectWindow),
		cfg:     cfg,
		logger:  logger,
		clock:   time.Now,
	}
}

func (uc *implUseCase) Run() {
	go uc.limiter.cleanupLoop(uc.hub.ctx.Done())
	uc.hub.run()
}

func (uc *implUseCase) Shutdown(ctx context.Context) error {
	return uc.hub.shutdown(ctx)
}

func (uc *implUseCase) Admit(ctx context.Context, input realtime.ConnectionInput) error {
	if err := uc.hub.admit(input.OrganizationID, input.UserID); err != nil {
		return err
	}
	if !uc.limiter.allow(input.UserID) {
		return realtime.ErrConnectRateExceeded
	}
	return nil
}

func (uc *implUseCase) Register(ctx context.Context, input realtime.ConnectionInput) error {
	if input.Conn == nil {
		return realtime.ErrInvalidMessage
	}

	conn := &Connection{
		hub:            uc.hub,
		conn:           input.Conn,
		orgID:          input.OrganizationID,
		userID:         input.UserID,
		send:           make(chan []byte, sendBuffer),
		pongWait:       uc.cfg.PongWait,
		pingPeriod:     uc.cfg.PingPeriod,
		writeWait:      uc.cfg.WriteWait,
		maxMessageSize: uc.cfg.MaxMessageSize,
		logger:         uc.logger,
		done:           make(chan struct{}),
	}
	uc.hub.register <- conn
	conn.start()
	return nil
}

func (uc *implUseCase) ProcessMessage(ctx context.Context, input realtime.ProcessMessageInput) error {
	orgID, err := realtime.ParseChannel(input.Channel)
	if err != nil {
		return err
	}

	var event model.ChangeEvent
	if err := json.Unmarshal(input.Payload, &event); err != nil || event.Typename == "" {
		return realtime.ErrInvalidMessage
	}
	if event.OrganizationID == "" {
		event.OrganizationID = orgID
	}
	if event.OrganizationID != orgID {
		return realtime.ErrOrganizationMismatch
	}

	data, err := json.Marshal(realtime.NotificationOutput{
		Type:      realtime.MessageTypeChange,
		Timestamp: uc.clock(),
		Payload:   event,
	})
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}

	uc.hub.broadcast <- orgMessage{orgID: orgID, data: data}
	return nil
}

func (uc *implUseCase) GetStats(ctx context.Context) (realtime.HubStats, error) {
	return uc.hub.stats(), nil
}

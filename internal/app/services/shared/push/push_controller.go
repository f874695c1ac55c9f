package push

import (
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/exceptions"
	"lifelink-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// pongWait bounds how long a silent connection stays registered. Clients
// ping periodically; each ping extends the deadline.
const pongWait = 60 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type PushController struct {
	Hub            *Hub
	SessionService contracts.SessionService
	JWTSecret      string
	Log            *zap.Logger
}

func NewPushController(hub *Hub, sessionService contracts.SessionService, jwtSecret string, logger *zap.Logger) *PushController {
	return &PushController{
		Hub:            hub,
		SessionService: sessionService,
		JWTSecret:      jwtSecret,
		Log:            logger,
	}
}

// ServeWS authenticates the `token` query parameter, upgrades the
// connection and parks it in the hub until the client disconnects or
// goes silent past the ping window.
func (ctrl *PushController) ServeWS(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get(constvars.QueryParamToken)
	if tokenString == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	sessionID, err := utils.ParseJWT(tokenString, ctrl.JWTSecret)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sessionData, err := ctrl.SessionService.GetSessionData(r.Context(), sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	session, err := ctrl.SessionService.ParseSessionData(r.Context(), sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		ctrl.Log.Warn("websocket upgrade failed",
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return
	}

	conn := ctrl.Hub.Register(session.UserID, ws)
	defer func() {
		ctrl.Hub.Unregister(session.UserID, conn)
		ws.Close()
	}()

	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPingHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Drain the read side; inbound frames carry no meaning here, the
	// loop only detects disconnects.
	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ctrl.Log.Debug("websocket closed unexpectedly",
					zap.String(constvars.LoggingUserIDKey, session.UserID),
					zap.Error(err),
				)
			}
			return
		}
	}
}

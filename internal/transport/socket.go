package transport

import (
	"bufio"
	"fmt"
	"math/rand"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/vjebelev/ibgo/internal/protocol"
)

// ClientVersion is the protocol level this client announces during the
// handshake. The gateway answers with its own version and the field lists
// it will parse are fixed by that exchange.
const ClientVersion = 48

// GatewayConn is a connected, handshaken gateway session. It accepts whole
// encoded messages and writes each in a single call; write failures return
// unchanged to the caller, which owns any reconnect policy.
type GatewayConn struct {
	conn net.Conn
	rd   *bufio.Reader
	cfg  Config
	log  zerolog.Logger

	serverVersion int64
	serverTime    string
}

// Dial connects to the gateway, retrying with backoff, and performs the
// handshake.
func Dial(addr string, clientID int64, cfg Config, log zerolog.Logger) (*GatewayConn, error) {
	attempts := cfg.DialAttempts
	if attempts < 1 {
		attempts = 1
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			time.Sleep(NextBackoffDelay(cfg.Backoff, attempt, rng))
		}
		conn, err := net.DialTimeout("tcp", addr, cfg.ConnectTimeout)
		if err != nil {
			log.Warn().Err(err).Str("addr", addr).Int("attempt", attempt).Msg("dial failed")
			lastErr = err
			continue
		}
		gc, err := NewGatewayConn(conn, clientID, cfg, log)
		if err != nil {
			conn.Close()
			lastErr = err
			continue
		}
		return gc, nil
	}
	return nil, fmt.Errorf("transport: dial %s: %w", addr, lastErr)
}

// NewGatewayConn runs the handshake over an established connection.
func NewGatewayConn(conn net.Conn, clientID int64, cfg Config, log zerolog.Logger) (*GatewayConn, error) {
	gc := &GatewayConn{
		conn: conn,
		rd:   bufio.NewReader(conn),
		cfg:  cfg,
		log:  log,
	}
	if err := gc.handshake(clientID); err != nil {
		return nil, fmt.Errorf("transport: handshake: %w", err)
	}
	log.Info().
		Int64("server_version", gc.serverVersion).
		Str("server_time", gc.serverTime).
		Int64("client_id", clientID).
		Msg("gateway session established")
	return gc, nil
}

// handshake announces the client version, reads the server version and
// time, then announces the client id.
func (g *GatewayConn) handshake(clientID int64) error {
	if g.cfg.HandshakeTimeout > 0 {
		g.conn.SetDeadline(time.Now().Add(g.cfg.HandshakeTimeout))
		defer g.conn.SetDeadline(time.Time{})
	}
	if _, err := g.conn.Write(protocol.EncodeTokens([]protocol.Token{protocol.Int(ClientVersion)})); err != nil {
		return err
	}
	raw, err := g.readToken()
	if err != nil {
		return err
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("bad server version %q", raw)
	}
	g.serverVersion = version
	if g.serverTime, err = g.readToken(); err != nil {
		return err
	}
	_, err = g.conn.Write(protocol.EncodeTokens([]protocol.Token{protocol.Int(clientID)}))
	return err
}

// readToken consumes one NUL-terminated token from the stream.
func (g *GatewayConn) readToken() (string, error) {
	raw, err := g.rd.ReadString(0)
	if err != nil {
		return "", err
	}
	return raw[:len(raw)-1], nil
}

// ServerVersion reports the protocol level the gateway announced.
func (g *GatewayConn) ServerVersion() int64 { return g.serverVersion }

// ServerTime reports the connection time string the gateway announced.
func (g *GatewayConn) ServerTime() string { return g.serverTime }

// Write sends one complete encoded message in a single call.
func (g *GatewayConn) Write(p []byte) (int, error) {
	if g.cfg.WriteTimeout > 0 {
		g.conn.SetWriteDeadline(time.Now().Add(g.cfg.WriteTimeout))
		defer g.conn.SetWriteDeadline(time.Time{})
	}
	n, err := g.conn.Write(p)
	if err != nil {
		return n, err
	}
	g.log.Debug().Int("bytes", n).Msg("message written")
	return n, nil
}

// Close shuts the session down.
func (g *GatewayConn) Close() error {
	g.log.Debug().Msg("closing gateway session")
	return g.conn.Close()
}

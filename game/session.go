package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/obslog"
	"github.com/daystram/chessrules/position"
)

type sessionConfig struct {
	fen    string
	logger *zap.Logger
}

type SessionOption func(*sessionConfig)

func WithFEN(fen string) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.fen = fen
	}
}

func WithLogger(l *zap.Logger) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.logger = l
	}
}

// Session owns the live game state and the selection of one player pair. It is the
// surface a view layer talks to. A Session is not safe for concurrent use.
type Session struct {
	id        string
	fen       string
	state     State
	selection Selection
	logger    *zap.Logger
}

func NewSession(opts ...SessionOption) (*Session, error) {
	cfg := &sessionConfig{
		fen: board.DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = obslog.L()
	}

	state, err := NewState(board.WithFEN(cfg.fen))
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:    uuid.NewString(),
		fen:   cfg.fen,
		state: state,
	}
	s.logger = cfg.logger.With(zap.String("session_id", s.id))
	s.logger.Info("session_start", zap.String("fen", state.FEN()))
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// Reset restores the position the session was created with.
func (s *Session) Reset() {
	// the FEN was already accepted by NewSession
	state, _ := NewState(board.WithFEN(s.fen))
	s.state = state
	s.selection = Selection{}
	s.logger.Info("session_reset")
}

// SelectOrMove handles one clicked square.
func (s *Session) SelectOrMove(pos position.Pos) Change {
	var change Change
	s.selection, s.state, change = s.selection.Select(s.state, pos)

	switch change.Kind {
	case ChangeSelected:
		side, piece, _ := s.state.Board.Get(change.From)
		s.logger.Debug("session_select",
			zap.String("square", change.From.String()),
			zap.Stringer("side", side),
			zap.Stringer("piece", piece),
		)
	case ChangeMoved:
		_, piece, _ := s.state.Board.Get(change.To)
		s.logger.Info("session_move",
			zap.String("from", change.From.String()),
			zap.String("to", change.To.String()),
			zap.Stringer("piece", piece),
			zap.Stringer("turn", s.state.Turn),
		)
	case ChangeRejected:
		s.logger.Debug("session_reject",
			zap.String("from", change.From.String()),
			zap.String("to", change.To.String()),
			zap.Stringer("turn", s.state.Turn),
		)
	}
	return change
}

// Piece returns the occupant of pos for rendering.
func (s *Session) Piece(pos position.Pos) (board.Side, board.Piece, error) {
	return s.state.Board.Get(pos)
}

func (s *Session) Turn() board.Side {
	return s.state.Turn
}

func (s *Session) Selected() (position.Pos, bool) {
	return s.selection.Selected()
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return s.state
}

// LegalMoves lists the destinations of the piece on pos for the side to move.
func (s *Session) LegalMoves(pos position.Pos) []position.Pos {
	return s.state.Board.LegalMoves(s.state.Turn, pos)
}

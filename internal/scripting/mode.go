package scripting

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/game/battle"
)

// nextStrategyFn is the Lua global a mode script must define:
//
//	function next_strategy(call)
//	    return "Aggressive"
//	end
//
// call is the 1-based number of times the mode has been asked for a strategy.
const nextStrategyFn = "next_strategy"

// Mode is a battle combat mode whose selection policy lives in a sandboxed
// Lua script. The script's next_strategy(call) function returns a strategy
// name ("Aggressive", "Defensive", or "Evasive", case-insensitive).
//
// The Mode contract forbids returning nil, so any script failure — runtime
// error, opcode limit exceeded, unknown strategy name — is logged and falls
// back to Evasive. Mode owns its LState and is single-owner like every other
// combat mode; it is not safe for concurrent use.
type Mode struct {
	state  *lua.LState
	logger *zap.Logger
	path   string
	calls  int
}

// NewMode loads the Lua script at path into a fresh sandboxed LState and
// verifies it defines a next_strategy function.
//
// instLimit is the Mode's total opcode budget, spent across the initial load
// and every NextStrategy call; once exhausted, further calls degrade to the
// Evasive fallback.
//
// Precondition: logger must not be nil; instLimit >= 0 (0 uses
// DefaultInstructionLimit).
// Postcondition: Returns a ready Mode or a non-nil error. The caller must
// Close the Mode when the battle is over.
func NewMode(path string, instLimit int, logger *zap.Logger) (*Mode, error) {
	L := NewSandboxedState(instLimit)
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("scripting: loading mode script %q: %w", path, err)
	}
	if _, ok := L.GetGlobal(nextStrategyFn).(*lua.LFunction); !ok {
		L.Close()
		return nil, fmt.Errorf("scripting: mode script %q does not define function %s", path, nextStrategyFn)
	}
	return &Mode{state: L, logger: logger, path: path}, nil
}

// NextStrategy invokes the script's next_strategy function with the 1-based
// call count and maps the returned name onto a built-in strategy.
//
// Postcondition: Never returns nil; falls back to Evasive on script failure.
func (m *Mode) NextStrategy() battle.Strategy {
	m.calls++

	err := m.state.CallByParam(lua.P{
		Fn:      m.state.GetGlobal(nextStrategyFn),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(m.calls))
	if err != nil {
		m.logger.Warn("mode script failed, falling back to Evasive",
			zap.String("script", m.path),
			zap.Int("call", m.calls),
			zap.Error(err),
		)
		return battle.Evasive
	}

	ret := m.state.Get(-1)
	m.state.Pop(1)

	name := normalizeStrategyName(lua.LVAsString(ret))
	strategy, ok := battle.StrategyByName(name)
	if !ok {
		m.logger.Warn("mode script returned unknown strategy, falling back to Evasive",
			zap.String("script", m.path),
			zap.Int("call", m.calls),
			zap.String("returned", lua.LVAsString(ret)),
		)
		return battle.Evasive
	}
	return strategy
}

// Close releases the underlying LState. The Mode must not be used afterwards.
func (m *Mode) Close() {
	m.state.Close()
}

// normalizeStrategyName maps case-insensitive script output onto the exported
// strategy names, e.g. "aggressive" → "Aggressive". The first rune is decoded
// as UTF-8 so multi-byte input is never split mid-rune.
func normalizeStrategyName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}

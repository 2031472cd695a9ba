// Package script exposes a history store to Lua scripts.
//
// A Session owns a Lua state preloaded with a "history" module whose
// functions drive a single rewind store:
//
//	local history = require("history")
//
//	history.set(1)
//	history.set(2)
//	history.undo()
//	print(history.value()) -- 1
//
// The module surface mirrors the store's command surface:
//   - set(v), silent(v): literal writes, undoable and silent
//   - update(fn), update_silent(fn): lazy writes evaluated against the
//     present value
//   - undo(), redo(): return true, or false plus an error message
//   - reset()
//   - value(), can_undo(), can_redo(), past(), future()
//
// gopher-lua's LState is not goroutine-safe; all Session methods must
// be called from a single goroutine.
package script

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/rewind"
)

// ErrSessionClosed is returned when operating on a closed session.
var ErrSessionClosed = errors.New("script session is closed")

// Session runs Lua scripts against a history store.
type Session struct {
	// ID uniquely identifies this session in error reports.
	ID string

	store  *rewind.Store[any]
	L      *lua.LState
	closed bool
}

// NewSession creates a Lua session bound to store.
func NewSession(store *rewind.Store[any]) *Session {
	s := &Session{
		ID:    uuid.New().String(),
		store: store,
		L:     lua.NewState(),
	}
	s.L.PreloadModule("history", s.loader)
	return s
}

// Store returns the store the session drives.
func (s *Session) Store() *rewind.Store[any] {
	return s.store
}

// RunFile executes a Lua script file.
func (s *Session) RunFile(path string) error {
	if s.closed {
		return ErrSessionClosed
	}
	if err := s.L.DoFile(path); err != nil {
		return fmt.Errorf("script session %s: %w", s.ID, err)
	}
	return nil
}

// RunString executes Lua source code.
func (s *Session) RunString(source string) error {
	if s.closed {
		return ErrSessionClosed
	}
	if err := s.L.DoString(source); err != nil {
		return fmt.Errorf("script session %s: %w", s.ID, err)
	}
	return nil
}

// Close releases the Lua state. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// loader builds the "history" module table.
func (s *Session) loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"set":           s.luaSet,
		"silent":        s.luaSilent,
		"update":        s.luaUpdate,
		"update_silent": s.luaUpdateSilent,
		"undo":          s.luaUndo,
		"redo":          s.luaRedo,
		"reset":         s.luaReset,
		"value":         s.luaValue,
		"can_undo":      s.luaCanUndo,
		"can_redo":      s.luaCanRedo,
		"past":          s.luaPast,
		"future":        s.luaFuture,
	})
	L.Push(mod)
	return 1
}

func (s *Session) luaSet(L *lua.LState) int {
	s.store.Set(toGoValue(L.CheckAny(1)))
	return 0
}

func (s *Session) luaSilent(L *lua.LState) int {
	s.store.SetSilent(toGoValue(L.CheckAny(1)))
	return 0
}

// luaUpdate applies a Lua function to the present value as an
// undoable write. The function is evaluated at transition time, while
// the store lock is held; sessions are single-threaded so this cannot
// deadlock.
func (s *Session) luaUpdate(L *lua.LState) int {
	return s.updateWith(L, false)
}

func (s *Session) luaUpdateSilent(L *lua.LState) int {
	return s.updateWith(L, true)
}

func (s *Session) updateWith(L *lua.LState, silent bool) int {
	fn := L.CheckFunction(1)

	var callErr error
	update := func(present any) any {
		L.Push(fn)
		L.Push(toLuaValue(L, present))
		if err := L.PCall(1, 1, nil); err != nil {
			callErr = err
			return present
		}
		result := L.Get(-1)
		L.Pop(1)
		return toGoValue(result)
	}

	if silent {
		s.store.UpdateSilent(update)
	} else {
		s.store.Update(update)
	}

	if callErr != nil {
		L.RaiseError("update function failed: %v", callErr)
	}
	return 0
}

func (s *Session) luaUndo(L *lua.LState) int {
	return pushResult(L, s.store.Undo())
}

func (s *Session) luaRedo(L *lua.LState) int {
	return pushResult(L, s.store.Redo())
}

func (s *Session) luaReset(L *lua.LState) int {
	s.store.Reset()
	return 0
}

func (s *Session) luaValue(L *lua.LState) int {
	L.Push(toLuaValue(L, s.store.Present()))
	return 1
}

func (s *Session) luaCanUndo(L *lua.LState) int {
	L.Push(lua.LBool(s.store.CanUndo()))
	return 1
}

func (s *Session) luaCanRedo(L *lua.LState) int {
	L.Push(lua.LBool(s.store.CanRedo()))
	return 1
}

func (s *Session) luaPast(L *lua.LState) int {
	L.Push(toLuaList(L, s.store.Snapshot().Past))
	return 1
}

func (s *Session) luaFuture(L *lua.LState) int {
	L.Push(toLuaList(L, s.store.Snapshot().Future))
	return 1
}

// pushResult converts a transition error into the Lua convention of
// returning true, or false plus a message.
func pushResult(L *lua.LState, err error) int {
	if err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

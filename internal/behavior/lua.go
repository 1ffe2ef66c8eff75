package behavior

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keytap/internal/action"
	"github.com/dshills/keytap/internal/gesture"
	"github.com/dshills/keytap/internal/keyboard"
)

// Lua answers the oracle questions through a host-provided script.
//
// The script may define any of these globals; absent ones fall back to
// inert answers:
//
//	should_end_sentence(gesture, action) -> boolean
//	end_sentence_text() -> string
//	preferred_mode(gesture, action) -> type, casing (or nil)
//
// Gestures and actions are passed in their configuration spelling
// ("release", "character:a", "switchType:numeric", ...), and mode answers
// use the same spelling ("alphabetic", "uppercased").
type Lua struct {
	state *lua.LState
}

// NewLua loads the script at path into a fresh sandboxed state.
func NewLua(path string) (*Lua, error) {
	b := newLua()
	if err := b.state.DoFile(path); err != nil {
		b.Close()
		return nil, fmt.Errorf("behavior: load script %s: %w", path, err)
	}
	return b, nil
}

// NewLuaFromString loads an in-memory script.
func NewLuaFromString(script string) (*Lua, error) {
	b := newLua()
	if err := b.state.DoString(script); err != nil {
		b.Close()
		return nil, fmt.Errorf("behavior: load script: %w", err)
	}
	return b, nil
}

func newLua() *Lua {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Safe libraries only; io, os, debug and package stay closed.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	return &Lua{state: L}
}

// Close releases the underlying Lua state.
func (b *Lua) Close() {
	b.state.Close()
}

// ShouldEndSentence asks should_end_sentence; a missing or failing global
// answers false.
func (b *Lua) ShouldEndSentence(g gesture.Gesture, a action.Action) bool {
	rets, ok := b.call("should_end_sentence", lua.LString(g.String()), lua.LString(a.String()))
	if !ok || len(rets) == 0 {
		return false
	}
	return lua.LVAsBool(rets[0])
}

// EndSentenceText asks end_sentence_text; a missing or failing global
// answers the default terminator.
func (b *Lua) EndSentenceText() string {
	rets, ok := b.call("end_sentence_text")
	if !ok || len(rets) == 0 {
		return DefaultEndSentenceText
	}
	if s, ok := rets[0].(lua.LString); ok {
		return string(s)
	}
	return DefaultEndSentenceText
}

// ShouldSwitchMode asks preferred_mode. The script answers a keyboard
// type name plus an optional casing name, or nil for no switch.
func (b *Lua) ShouldSwitchMode(g gesture.Gesture, a action.Action) (keyboard.Mode, bool) {
	rets, ok := b.call("preferred_mode", lua.LString(g.String()), lua.LString(a.String()))
	if !ok || len(rets) == 0 {
		return keyboard.Mode{}, false
	}
	typeName, ok := rets[0].(lua.LString)
	if !ok {
		return keyboard.Mode{}, false
	}
	t, err := keyboard.ParseType(string(typeName))
	if err != nil {
		log.WithError(err).Debug("behavior: preferred_mode answered an unknown type")
		return keyboard.Mode{}, false
	}
	casing := keyboard.CasingLowercased
	if len(rets) > 1 {
		casingName, ok := rets[1].(lua.LString)
		if !ok {
			return keyboard.Mode{}, false
		}
		c, err := keyboard.ParseCasing(string(casingName))
		if err != nil {
			log.WithError(err).Debug("behavior: preferred_mode answered an unknown casing")
			return keyboard.Mode{}, false
		}
		casing = c
	}
	return keyboard.Mode{Type: t, Casing: casing}, true
}

// call invokes the named global if it is a function. Lua errors and
// panics are logged at debug and reported as a failed call; the stack is
// restored either way.
func (b *Lua) call(name string, args ...lua.LValue) (rets []lua.LValue, ok bool) {
	fn := b.state.GetGlobal(name)
	if fn == lua.LNil || fn.Type() != lua.LTFunction {
		return nil, false
	}

	top := b.state.GetTop()
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("behavior: %s panicked: %v", name, r)
			b.state.SetTop(top)
			rets, ok = nil, false
		}
	}()

	b.state.Push(fn)
	for _, arg := range args {
		b.state.Push(arg)
	}
	if err := b.state.PCall(len(args), lua.MultRet, nil); err != nil {
		log.WithError(err).Debugf("behavior: %s failed", name)
		b.state.SetTop(top)
		return nil, false
	}

	n := b.state.GetTop() - top
	rets = make([]lua.LValue, n)
	for i := 0; i < n; i++ {
		rets[i] = b.state.Get(top + i + 1)
	}
	b.state.SetTop(top)
	return rets, true
}

package script

import (
	lua "github.com/yuin/gopher-lua"
)

// toGoValue converts a Lua value to a Go value. Tables convert to
// []any when they are sequences and map[string]any otherwise;
// functions and userdata convert to nil.
func toGoValue(lv lua.LValue) any {
	return toGoValueVisited(lv, make(map[*lua.LTable]bool))
}

func toGoValueVisited(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil // break circular references
		}
		visited[v] = true
		return tableToGo(v, visited)
	case *lua.LUserData:
		return v.Value
	default:
		return nil
	}
}

// tableToGo converts a Lua table to a slice when it is a pure
// sequence, otherwise to a map.
func tableToGo(t *lua.LTable, visited map[*lua.LTable]bool) any {
	isSequence := true
	maxIndex := 0
	entries := 0
	t.ForEach(func(k, _ lua.LValue) {
		entries++
		if kn, ok := k.(lua.LNumber); ok {
			n := int(kn)
			if float64(n) == float64(kn) && n > 0 {
				if n > maxIndex {
					maxIndex = n
				}
				return
			}
		}
		isSequence = false
	})

	if isSequence && maxIndex == entries {
		list := make([]any, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			list[i-1] = toGoValueVisited(t.RawGetInt(i), visited)
		}
		return list
	}

	m := make(map[string]any, entries)
	t.ForEach(func(k, v lua.LValue) {
		m[k.String()] = toGoValueVisited(v, visited)
	})
	return m
}

// toLuaValue converts a Go value to a Lua value.
func toLuaValue(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []any:
		table := L.NewTable()
		for _, item := range val {
			table.Append(toLuaValue(L, item))
		}
		return table
	case map[string]any:
		table := L.NewTable()
		for key, item := range val {
			L.SetField(table, key, toLuaValue(L, item))
		}
		return table
	default:
		ud := L.NewUserData()
		ud.Value = val
		return ud
	}
}

// toLuaList converts a Go slice to a Lua sequence table.
func toLuaList(L *lua.LState, values []any) *lua.LTable {
	table := L.NewTable()
	for _, v := range values {
		table.Append(toLuaValue(L, v))
	}
	return table
}

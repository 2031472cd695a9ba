package script

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestToGoValueScalars(t *testing.T) {
	tests := []struct {
		name     string
		lv       lua.LValue
		expected any
	}{
		{"bool", lua.LTrue, true},
		{"integer", lua.LNumber(42), int64(42)},
		{"float", lua.LNumber(1.5), 1.5},
		{"string", lua.LString("hello"), "hello"},
		{"nil", lua.LNil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toGoValue(tt.lv); got != tt.expected {
				t.Errorf("toGoValue(%v) = %v (%T), want %v (%T)", tt.lv, got, got, tt.expected, tt.expected)
			}
		})
	}
}

func TestToGoValueSequence(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	table := L.NewTable()
	table.Append(lua.LNumber(1))
	table.Append(lua.LNumber(2))
	table.Append(lua.LString("three"))

	got, ok := toGoValue(table).([]any)
	if !ok {
		t.Fatalf("expected []any, got %T", toGoValue(table))
	}
	if len(got) != 3 || got[0] != int64(1) || got[1] != int64(2) || got[2] != "three" {
		t.Errorf("sequence = %v", got)
	}
}

func TestToGoValueMap(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	table := L.NewTable()
	L.SetField(table, "name", lua.LString("draft"))
	L.SetField(table, "count", lua.LNumber(3))

	got, ok := toGoValue(table).(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", toGoValue(table))
	}
	if got["name"] != "draft" || got["count"] != int64(3) {
		t.Errorf("map = %v", got)
	}
}

func TestToGoValueCircularTable(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	table := L.NewTable()
	L.SetField(table, "self", table)

	// Must terminate rather than recurse forever.
	got, ok := toGoValue(table).(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", toGoValue(table))
	}
	if got["self"] != nil {
		t.Errorf("circular reference should convert to nil, got %v", got["self"])
	}
}

func TestToLuaValueRoundTrip(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	values := []any{
		true,
		int64(7),
		2.5,
		"text",
		[]any{int64(1), "two"},
		map[string]any{"k": int64(9)},
	}

	for _, v := range values {
		back := toGoValue(toLuaValue(L, v))
		switch expected := v.(type) {
		case []any:
			got, ok := back.([]any)
			if !ok || len(got) != len(expected) {
				t.Errorf("round trip %v = %v", v, back)
			}
		case map[string]any:
			got, ok := back.(map[string]any)
			if !ok || len(got) != len(expected) {
				t.Errorf("round trip %v = %v", v, back)
			}
		default:
			if back != v {
				t.Errorf("round trip %v = %v", v, back)
			}
		}
	}
}

func TestToLuaValueUnknownType(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	type opaque struct{ n int }
	lv := toLuaValue(L, opaque{n: 1})

	ud, ok := lv.(*lua.LUserData)
	if !ok {
		t.Fatalf("expected userdata, got %T", lv)
	}
	if ud.Value.(opaque).n != 1 {
		t.Error("userdata should carry the original value")
	}
}

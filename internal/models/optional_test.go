package models

import (
	"encoding/json"
	"testing"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Account Optional[string] `json:"account"`
	}

	t.Run("absent key stays unset", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
			t.Fatal(err)
		}
		if p.Account.Set {
			t.Error("expected Set=false for absent key")
		}
	})

	t.Run("explicit null is set with nil value", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"account":null}`), &p); err != nil {
			t.Fatal(err)
		}
		if !p.Account.Set {
			t.Error("expected Set=true for explicit null")
		}
		if p.Account.Value != nil {
			t.Errorf("expected nil value, got %v", *p.Account.Value)
		}
	})

	t.Run("value is set and stored", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"account":"123456789"}`), &p); err != nil {
			t.Fatal(err)
		}
		if !p.Account.Set || p.Account.Value == nil || *p.Account.Value != "123456789" {
			t.Errorf("got %+v", p.Account)
		}
	})
}

func TestOptional_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewOptional("upi@ok"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"upi@ok"` {
		t.Errorf("got %s", b)
	}

	b, err = json.Marshal(NullOptional[string]())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("got %s", b)
	}
}

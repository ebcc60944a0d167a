package model

import (
	"encoding/json"
	"testing"
)

func TestElement_JSONKeys(t *testing.T) {
	el := Element{
		Role:        "AXGroup",
		Subrole:     "AXNotificationCenterAlert",
		Description: "Messages, Hi there",
		Actions:     []string{"Name:Close"},
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"role", "subrole", "description", "actions"} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
	if _, ok := m["children"]; ok {
		t.Error("nil children should be omitted")
	}
}


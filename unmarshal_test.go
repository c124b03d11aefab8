package servicebindings

import "testing"

type postgresBinding struct {
	Type           string
	Provider       string
	URL            string `servicebinding:"url"`
	MaxConnections int    `servicebinding:"max-connections"`
	SSL            bool   `servicebinding:"ssl"`
}

func TestUnmarshal(t *testing.T) {
	b := NewMap("primary-db", map[string][]byte{
		"type":            []byte("postgresql\n"),
		"provider":        []byte("bitnami\n"),
		"url":             []byte("postgres://example.com/primary\n"),
		"max-connections": []byte("10\n"),
		"ssl":             []byte("true\n"),
	})

	var pg postgresBinding
	if err := Unmarshal(b, &pg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if pg.Type != "postgresql" || pg.Provider != "bitnami" {
		t.Fatalf("reserved entries: %+v", pg)
	}
	if pg.URL != "postgres://example.com/primary" {
		t.Fatalf("url: %q", pg.URL)
	}
	if pg.MaxConnections != 10 || !pg.SSL {
		t.Fatalf("weak typing: %+v", pg)
	}
}

func TestUnmarshalConfigTree(t *testing.T) {
	b := NewConfigTree("testdata/primary-db")

	var pg postgresBinding
	if err := Unmarshal(b, &pg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if pg.Type != "postgresql" || pg.URL != "postgres://example.com/primary" {
		t.Fatalf("Unmarshal result: %+v", pg)
	}
}

func TestUnmarshalCachedForwards(t *testing.T) {
	b := NewCached(NewMap("primary-db", map[string][]byte{
		"type": []byte("postgresql"),
	}))

	var pg postgresBinding
	if err := Unmarshal(b, &pg); err != nil {
		t.Fatalf("Unmarshal through cache: %v", err)
	}
	if pg.Type != "postgresql" {
		t.Fatalf("Unmarshal result: %+v", pg)
	}
}

func TestUnmarshalWithoutEnumeration(t *testing.T) {
	b := newCountingBinding("test-name", nil)

	var pg postgresBinding
	if err := Unmarshal(b, &pg); err == nil {
		t.Fatal("Unmarshal must fail for bindings without key enumeration")
	}
}

package debug

import "testing"

func TestBoolEnvParsesTruthyValues(t *testing.T) {
	t.Setenv("ZENJSON_DEBUG_TEST", "1")
	if !boolEnv("ZENJSON_DEBUG_TEST") {
		t.Fatalf("expected true for \"1\"")
	}
}

func TestBoolEnvDefaultsFalseWhenUnset(t *testing.T) {
	if boolEnv("ZENJSON_DEBUG_DOES_NOT_EXIST") {
		t.Fatalf("expected false for unset variable")
	}
}

func TestBoolEnvRejectsGarbage(t *testing.T) {
	t.Setenv("ZENJSON_DEBUG_TEST", "not-a-bool")
	if boolEnv("ZENJSON_DEBUG_TEST") {
		t.Fatalf("expected false for unparseable value")
	}
}

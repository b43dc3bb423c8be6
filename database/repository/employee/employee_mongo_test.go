package employeeRepo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNameFilter(t *testing.T) {
	filter := nameFilter("O'Brien (night)")
	re, ok := filter["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected a regex name filter, got %+v", filter)
	}
	if re.Options != "i" {
		t.Errorf("name matching must be case-insensitive, got options %q", re.Options)
	}
	if re.Pattern != `^O'Brien \(night\)$` {
		t.Errorf("regex metacharacters in the name must be quoted, got %q", re.Pattern)
	}
}

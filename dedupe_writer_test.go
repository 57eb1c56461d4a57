package dupex

import (
	"bytes"
	"testing"
)

func TestDedupingWriter(t *testing.T) {
	t.Run("basic deduplication using dedupe utils", func(t *testing.T) {
		buf := &bytes.Buffer{}
		dw := NewDedupingWriter(buf)

		// Write some duplicate data
		if _, err := dw.Write([]byte("gizmo\n")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		if _, err := dw.Write([]byte("widget\n")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		if _, err := dw.Write([]byte("gizmo\n")); err != nil { // duplicate
			t.Fatalf("failed to write: %v", err)
		}
		if _, err := dw.Write([]byte("brand 1\n")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		if _, err := dw.Write([]byte("widget\n")); err != nil { // duplicate
			t.Fatalf("failed to write: %v", err)
		}

		// Close to flush and wait for async processing
		if err := dw.Close(); err != nil {
			t.Fatalf("failed to close: %v", err)
		}

		if dw.Count() != 3 {
			t.Errorf("Expected 3 unique items, got %d", dw.Count())
		}

		output := buf.String()
		// Check all unique items are present (order may vary due to async)
		if !contains(output, "gizmo\n") || !contains(output, "widget\n") || !contains(output, "brand 1\n") {
			t.Errorf("Expected all unique items in output, got %q", output)
		}
	})

	t.Run("sentinel seeded as blacklist", func(t *testing.T) {
		buf := &bytes.Buffer{}
		dw := NewDedupingWriter(buf, DefaultSentinel)

		if _, err := dw.Write([]byte("gizmo\n")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		if _, err := dw.Write([]byte(DefaultSentinel + "\n")); err != nil { // blacklisted
			t.Fatalf("failed to write: %v", err)
		}
		if _, err := dw.Write([]byte("widget\n")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}

		if err := dw.Close(); err != nil {
			t.Fatalf("failed to close: %v", err)
		}

		if dw.Count() != 2 {
			t.Errorf("Expected 2 unique items (excluding sentinel), got %d", dw.Count())
		}

		output := buf.String()
		if contains(output, DefaultSentinel) {
			t.Errorf("Output should not contain the sentinel, got %q", output)
		}
		if !contains(output, "gizmo\n") || !contains(output, "widget\n") {
			t.Errorf("Output should contain gizmo and widget, got %q", output)
		}
	})

	t.Run("handle multiple lines in single write", func(t *testing.T) {
		buf := &bytes.Buffer{}
		dw := NewDedupingWriter(buf)

		// Write multiple lines at once with duplicates
		if _, err := dw.Write([]byte("gizmo\nwidget\ngizmo\nwidg\n")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}

		if err := dw.Close(); err != nil {
			t.Fatalf("failed to close: %v", err)
		}

		if dw.Count() != 3 {
			t.Errorf("Expected 3 unique items, got %d", dw.Count())
		}

		output := buf.String()
		if !contains(output, "gizmo\n") || !contains(output, "widget\n") || !contains(output, "widg\n") {
			t.Errorf("Expected all unique items in output, got %q", output)
		}
	})

	t.Run("skip empty lines", func(t *testing.T) {
		buf := &bytes.Buffer{}
		dw := NewDedupingWriter(buf)

		if _, err := dw.Write([]byte("gizmo\n\nwidget\n\n")); err != nil {
			t.Fatalf("failed to write: %v", err)
		}

		if err := dw.Close(); err != nil {
			t.Fatalf("failed to close: %v", err)
		}

		if dw.Count() != 2 {
			t.Errorf("Expected 2 unique items (skipping empty), got %d", dw.Count())
		}
	})
}

// Helper function to check if a string contains a substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

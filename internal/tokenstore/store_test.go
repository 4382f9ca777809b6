package tokenstore

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), ".medium", "credentials.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSaveAndLoadToken(t *testing.T) {
	t.Parallel()
	st := openTestStore(t)

	want := Token{AccessToken: "myaccesstoken", RefreshToken: "myrefreshtoken"}
	if err := st.SaveToken(want); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	got, err := st.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if got != want {
		t.Fatalf("token mismatch: got=%+v want=%+v", got, want)
	}

	// Saving again overwrites.
	if err := st.SaveToken(Token{AccessToken: "new"}); err != nil {
		t.Fatalf("SaveToken (overwrite): %v", err)
	}
	got, err = st.Token()
	if err != nil || got.AccessToken != "new" || got.RefreshToken != "" {
		t.Fatalf("overwrite unexpected: got=%+v err=%v", got, err)
	}
}

func TestTokenMissing(t *testing.T) {
	t.Parallel()
	st := openTestStore(t)
	if _, err := st.Token(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestDeleteToken(t *testing.T) {
	t.Parallel()
	st := openTestStore(t)

	// Deleting with nothing stored is fine.
	if err := st.DeleteToken(); err != nil {
		t.Fatalf("DeleteToken (empty): %v", err)
	}

	if err := st.SaveToken(Token{AccessToken: "tok"}); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := st.DeleteToken(); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if _, err := st.Token(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken after delete, got %v", err)
	}
}

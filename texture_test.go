package dioteko_test

import (
	"errors"
	"testing"

	"github.com/e0328eric/dioteko"
	"github.com/e0328eric/dioteko/enginetest"
)

func wantLoadError(t *testing.T, err error, kind dioteko.ResourceKind) {
	t.Helper()
	var le *dioteko.ResourceLoadError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *ResourceLoadError", err)
	}
	if le.Kind != kind || !errors.Is(err, dioteko.ErrInvalidResource) {
		t.Errorf("load error = %+v", le)
	}
}

// --- Textures ---

func TestLoadTextureAndRelease(t *testing.T) {
	e := enginetest.New()
	e.SetImageSize("hero.png", 48, 24)
	w := openWindow(t, e)

	tex, err := dioteko.LoadTexture(w, "hero.png")
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 48 || tex.Height() != 24 {
		t.Errorf("size = %dx%d", tex.Width(), tex.Height())
	}
	if w.LiveResources() != 1 || e.LiveTextures() != 1 {
		t.Fatalf("live = %d/%d", w.LiveResources(), e.LiveTextures())
	}

	id := tex.Raw().ID
	clone := tex.Clone()
	_ = tex.Release()
	if e.UnloadCount(id) != 0 {
		t.Fatal("unloaded while a clone is alive")
	}
	_ = clone.Release()
	if e.UnloadCount(id) != 1 || e.LiveTextures() != 0 || w.LiveResources() != 0 {
		t.Errorf("unloads %d, live %d/%d", e.UnloadCount(id), e.LiveTextures(), w.LiveResources())
	}
	checkEngine(t, e)
}

func TestLoadTextureFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(e *enginetest.Engine)
		unloads int
	}{
		{"zero descriptor", func(e *enginetest.Engine) { e.FailLoad("bad.png") }, 0},
		{"id without size", func(e *enginetest.Engine) { e.FailLoadPartial("bad.png") }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := enginetest.New()
			tt.setup(e)
			w := openWindow(t, e)

			tex, err := dioteko.LoadTexture(w, "bad.png")
			if tex != nil {
				t.Fatal("handle allocated for a failed load")
			}
			wantLoadError(t, err, dioteko.KindTexture)
			if e.LiveTextures() != 0 || w.LiveResources() != 0 {
				t.Errorf("live = %d/%d", e.LiveTextures(), w.LiveResources())
			}
			if got := e.Count("UnloadTexture"); got != tt.unloads {
				t.Errorf("UnloadTexture calls = %d, want %d", got, tt.unloads)
			}
			checkEngine(t, e)
		})
	}
}

func TestLoadTextureFromImage(t *testing.T) {
	e := enginetest.New()
	w := openWindow(t, e)
	e.SetImageSize("tiles.png", 16, 16)

	img, err := dioteko.LoadImage(e, "tiles.png")
	if err != nil {
		t.Fatal(err)
	}
	tex, err := dioteko.LoadTextureFromImage(w, img)
	if err != nil {
		t.Fatal(err)
	}
	// The image is only borrowed.
	if err := img.Release(); err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 16 {
		t.Errorf("width = %d", tex.Width())
	}

	back, err := dioteko.LoadImageFromTexture(e, tex)
	if err != nil {
		t.Fatal(err)
	}
	if back.Width() != 16 || back.Height() != 16 {
		t.Errorf("read back %dx%d", back.Width(), back.Height())
	}
	_ = back.Release()
	_ = tex.Release()
	if e.LiveImages() != 0 || e.LiveTextures() != 0 {
		t.Errorf("leaked %d images, %d textures", e.LiveImages(), e.LiveTextures())
	}
	checkEngine(t, e)
}

// --- Release after close ---

func TestReleaseAfterClose(t *testing.T) {
	e := enginetest.New()
	w := openWindow(t, e)
	tex, _ := dioteko.LoadTexture(w, "a.png")
	weak := tex.Downgrade()
	_ = w.Close()

	err := tex.Release()
	wantViolation(t, err, dioteko.ErrSessionClosed)
	if e.Count("UnloadTexture") != 0 {
		t.Error("unload issued against a closed engine")
	}
	if up, ok := weak.Upgrade(); ok || up != nil {
		t.Error("weak handle upgraded after the last strong release")
	}
	weak.Release()
	checkEngine(t, e)
}

func TestReadBackAfterClose(t *testing.T) {
	e := enginetest.New()
	w := openWindow(t, e)
	tex, err := dioteko.LoadTexture(w, "a.png")
	if err != nil {
		t.Fatal(err)
	}
	_ = w.Close()

	img, err := dioteko.LoadImageFromTexture(e, tex)
	if img != nil {
		t.Fatal("image read back from a closed session")
	}
	wantViolation(t, err, dioteko.ErrSessionClosed)
	if e.Count("LoadImageFromTexture") != 0 {
		t.Error("read-back issued against a closed engine")
	}
	_ = tex.Release()
	checkEngine(t, e)
}

// --- Render textures ---

func TestRenderTexture(t *testing.T) {
	e := enginetest.New()
	w := openWindow(t, e)

	rt, err := dioteko.LoadRenderTexture(w, 128, 64)
	if err != nil {
		t.Fatal(err)
	}
	if rt.Width() != 128 || rt.Height() != 64 {
		t.Errorf("size = %dx%d", rt.Width(), rt.Height())
	}
	weak := rt.Downgrade()
	defer weak.Release()

	if strong, ok := weak.Upgrade(); !ok {
		t.Fatal("upgrade failed while alive")
	} else {
		_ = strong.Release()
	}
	_ = rt.Release()
	if e.LiveRenderTextures() != 0 {
		t.Errorf("live render textures = %d", e.LiveRenderTextures())
	}
	checkEngine(t, e)
}

func TestLoadRenderTextureFailures(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		setup         func(e *enginetest.Engine)
		unloads       int
	}{
		{"zero size", 0, 10, func(*enginetest.Engine) {}, 0},
		{"driver refused", 10, 10, func(e *enginetest.Engine) { e.FailLoad("render") }, 0},
		{"no color buffer", 10, 10, func(e *enginetest.Engine) { e.FailLoadPartial("render") }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := enginetest.New()
			tt.setup(e)
			w := openWindow(t, e)
			rt, err := dioteko.LoadRenderTexture(w, tt.width, tt.height)
			if rt != nil {
				t.Fatal("handle allocated for a failed load")
			}
			wantLoadError(t, err, dioteko.KindRenderTexture)
			if got := e.Count("UnloadRenderTexture"); got != tt.unloads {
				t.Errorf("UnloadRenderTexture calls = %d, want %d", got, tt.unloads)
			}
			if e.LiveRenderTextures() != 0 {
				t.Errorf("live render textures = %d", e.LiveRenderTextures())
			}
			checkEngine(t, e)
		})
	}
}

// --- Images ---

func TestImagesOutliveSessions(t *testing.T) {
	e := enginetest.New()
	img, err := dioteko.LoadImage(e, "sprite.png")
	if err != nil {
		t.Fatal(err)
	}
	id := img.Raw().ID
	w := openWindow(t, e)
	_ = w.Close()

	if err := img.Release(); err != nil {
		t.Errorf("image release after close = %v, want nil", err)
	}
	if e.UnloadCount(id) != 1 {
		t.Error("image not unloaded")
	}
}

func TestLoadImageFromMemory(t *testing.T) {
	e := enginetest.New()

	img, err := dioteko.LoadImageFromMemory(e, ".png", []byte{0x89, 'P', 'N', 'G'})
	if err != nil {
		t.Fatal(err)
	}
	defer img.Release()

	_, err = dioteko.LoadImageFromMemory(e, ".png", nil)
	wantLoadError(t, err, dioteko.KindImage)

	var le *dioteko.ResourceLoadError
	if errors.As(err, &le) && le.Source != "memory.png" {
		t.Errorf("source = %q", le.Source)
	}
}

func TestCopyImage(t *testing.T) {
	e := enginetest.New()
	e.SetImageSize("a.png", 4, 2)
	a, err := dioteko.LoadImage(e, "a.png")
	if err != nil {
		t.Fatal(err)
	}
	b, err := dioteko.CopyImage(e, a)
	if err != nil {
		t.Fatal(err)
	}
	if a.Raw().ID == b.Raw().ID {
		t.Fatal("copy shares the engine resource")
	}
	s, _ := b.Counts()
	if s != 1 {
		t.Errorf("copy strong count = %d, want its own block", s)
	}
	_ = a.Release()
	if b.Width() != 4 || b.Height() != 2 {
		t.Errorf("copy size = %dx%d", b.Width(), b.Height())
	}
	_ = b.Release()
	if e.LiveImages() != 0 {
		t.Errorf("live images = %d", e.LiveImages())
	}
	checkEngine(t, e)
}

func TestExportImage(t *testing.T) {
	e := enginetest.New()
	img, _ := dioteko.LoadImage(e, "a.png")
	defer img.Release()

	if err := dioteko.ExportImage(e, img, "out.bmp"); err != nil {
		t.Fatal(err)
	}
	if got, ok := e.Exported("out.bmp"); !ok || got.ID != img.Raw().ID {
		t.Errorf("exported = %v, %v", got, ok)
	}
	e.FailExport = true
	if err := dioteko.ExportImage(e, img, "out2.bmp"); err == nil {
		t.Error("refused export should fail")
	}
}

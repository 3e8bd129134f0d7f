package raster

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/recording"
)

func record(t *testing.T, w, h int, list ...shapes.Shape) *recording.Recording {
	t.Helper()
	rec := recording.NewRecorder(w, h)
	if err := rec.DrawAll(list...); err != nil {
		t.Fatalf("DrawAll: %v", err)
	}
	return rec.FinishRecording()
}

func TestBackendRegistered(t *testing.T) {
	if !recording.IsRegistered("raster") {
		t.Fatal("raster backend should register itself on import")
	}
	b, err := recording.NewBackend("raster")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Errorf("NewBackend(raster) returned %T", b)
	}
}

func TestPlaybackMatchesPixmap(t *testing.T) {
	list := []shapes.Shape{
		shapes.NewCircle(30, 30, 20),
		shapes.NewTriangle(shapes.Pt(5, 5), shapes.Pt(55, 10), shapes.Pt(20, 50)),
		shapes.NewCube(shapes.Pt(40, 40), 25),
	}
	want := shapes.NewPixmap(64, 64)
	if err := shapes.DrawAll(want, list...); err != nil {
		t.Fatalf("DrawAll: %v", err)
	}

	b := NewBackend()
	if err := record(t, 64, 64, list...).Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if !bytes.Equal(b.Pixmap().Data(), want.Data()) {
		t.Error("playback differs from direct drawing")
	}
}

func TestBackground(t *testing.T) {
	b := NewBackend()
	b.Configure(recording.Options{Background: shapes.Black})
	if err := record(t, 4, 4, shapes.Pt(1, 1)).Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if got := b.Pixmap().GetPixel(0, 0); got != shapes.Black {
		t.Errorf("background pixel = %v, want black", got)
	}
	if got := b.Pixmap().GetPixel(1, 1); got != shapes.White {
		t.Errorf("drawn pixel = %v, want white", got)
	}
}

func TestWriteToScaled(t *testing.T) {
	b := NewBackend()
	b.Configure(recording.Options{Scale: 3})
	if err := record(t, 5, 4, shapes.Pt(2, 1)).Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 15 || got.Y != 12 {
		t.Fatalf("scaled size = %v, want 15x12", got)
	}
	for _, p := range [][2]int{{6, 3}, {8, 5}} {
		if _, _, _, a := img.At(p[0], p[1]).RGBA(); a == 0 {
			t.Errorf("pixel %v should be inside the scaled block", p)
		}
	}
	if _, _, _, a := img.At(5, 3).RGBA(); a != 0 {
		t.Error("pixel (5,3) should be outside the scaled block")
	}
}

func TestSaveToFile(t *testing.T) {
	b := NewBackend()
	if err := record(t, 8, 8, shapes.NewCircle(4, 4, 3)).Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		if err := b.SaveToFile(filepath.Join(t.TempDir(), name)); err != nil {
			t.Errorf("SaveToFile(%s): %v", name, err)
		}
	}
}

func TestImageBeforeBegin(t *testing.T) {
	if img := NewBackend().Image(); img != nil {
		t.Errorf("Image before Begin = %v, want nil", img)
	}
}

func TestOutputBeforeBegin(t *testing.T) {
	b := NewBackend()
	b.SetPixel(1, 1, shapes.Black)

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); !errors.Is(err, ErrNotStarted) {
		t.Errorf("WriteTo before Begin = %v, want ErrNotStarted", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteTo before Begin wrote %d bytes", buf.Len())
	}
	if err := b.SaveToFile(filepath.Join(t.TempDir(), "out.png")); !errors.Is(err, ErrNotStarted) {
		t.Errorf("SaveToFile before Begin = %v, want ErrNotStarted", err)
	}
}

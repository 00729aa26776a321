package dioteko

// --- Textures ---

// LoadTexture loads a GPU texture from an image file. The session must be
// Ready; the texture may not outlive it.
func LoadTexture(w *Window, path string) (*Texture, error) {
	const op = "dioteko.LoadTexture"
	if err := w.checkReady(op); err != nil {
		return nil, err
	}
	return loadTexture(w, op, path, w.engine.LoadTexture(path))
}

// LoadTextureFromImage uploads a CPU image to a new GPU texture. The image
// is only borrowed for the duration of the call.
func LoadTextureFromImage(w *Window, img *Image) (*Texture, error) {
	const op = "dioteko.LoadTextureFromImage"
	if err := w.checkReady(op); err != nil {
		return nil, err
	}
	return loadTexture(w, op, "image", w.engine.LoadTextureFromImage(img.Raw()))
}

func loadTexture(w *Window, op, source string, raw RawTexture) (*Texture, error) {
	if !raw.Valid() {
		// Some backends hand out an ID before discovering the failure.
		if raw.ID != 0 {
			w.engine.UnloadTexture(raw)
		}
		return nil, &ResourceLoadError{Op: op, Kind: KindTexture, Source: source, Err: ErrInvalidResource}
	}
	return newHandle(raw, w, w.engine.UnloadTexture), nil
}

// --- Render textures ---

// LoadRenderTexture creates an offscreen framebuffer of the given size.
// Draw into it with Painter.TextureMode.
func LoadRenderTexture(w *Window, width, height int) (*RenderTexture, error) {
	const op = "dioteko.LoadRenderTexture"
	if err := w.checkReady(op); err != nil {
		return nil, err
	}
	raw := w.engine.LoadRenderTexture(width, height)
	if !raw.Valid() {
		if raw.ID != 0 {
			w.engine.UnloadRenderTexture(raw)
		}
		return nil, &ResourceLoadError{Op: op, Kind: KindRenderTexture, Source: "framebuffer", Err: ErrInvalidResource}
	}
	return newHandle(raw, w, w.engine.UnloadRenderTexture), nil
}

// --- Images ---

// Images live in CPU memory and do not need a window; an icon has to be
// loaded before the session exists.

// LoadImage decodes an image file.
func LoadImage(e ResourceEngine, path string) (*Image, error) {
	return loadImage(e, "dioteko.LoadImage", path, e.LoadImage(path))
}

// LoadImageFromMemory decodes an in-memory file. fileType is the file
// extension including the dot (e.g. ".png").
func LoadImageFromMemory(e ResourceEngine, fileType string, data []byte) (*Image, error) {
	return loadImage(e, "dioteko.LoadImageFromMemory", "memory"+fileType, e.LoadImageFromMemory(fileType, data))
}

// LoadImageFromTexture reads a GPU texture back into a new CPU image. The
// texture's session must still be Ready.
func LoadImageFromTexture(e ResourceEngine, tex *Texture) (*Image, error) {
	const op = "dioteko.LoadImageFromTexture"
	r := tex.live(op)
	if r.owner != nil && r.owner.state != StateReady {
		return nil, violation(op, ErrSessionClosed)
	}
	return loadImage(e, op, "texture", e.LoadImageFromTexture(r.raw))
}

// CopyImage returns a deep copy of img with its own counter block.
func CopyImage(e ResourceEngine, img *Image) (*Image, error) {
	return loadImage(e, "dioteko.CopyImage", "image", e.ImageCopy(img.Raw()))
}

func loadImage(e ResourceEngine, op, source string, raw RawImage) (*Image, error) {
	if !raw.Valid() {
		if raw.ID != 0 {
			e.UnloadImage(raw)
		}
		return nil, &ResourceLoadError{Op: op, Kind: KindImage, Source: source, Err: ErrInvalidResource}
	}
	return newHandle(raw, nil, e.UnloadImage), nil
}

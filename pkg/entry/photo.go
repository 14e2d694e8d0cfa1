package entry

// Photo references an image file owned by a journal entry.
type Photo struct {
	URI  string `json:"uri"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// PhotoKind tags which stored representation a PhotoRef came from.
type PhotoKind int

const (
	PhotoNone PhotoKind = iota
	// PhotoMultiple is the ordered photos sequence.
	PhotoMultiple
	// PhotoSingle is the legacy single photo field.
	PhotoSingle
	// PhotoInlineBase64 is an image embedded in the record.
	PhotoInlineBase64
)

func (k PhotoKind) String() string {
	switch k {
	case PhotoMultiple:
		return "multiple"
	case PhotoSingle:
		return "single"
	case PhotoInlineBase64:
		return "base64"
	default:
		return "none"
	}
}

// PhotoRef is the normalized view over photos, photo and photoBase64.
type PhotoRef struct {
	Kind   PhotoKind
	Photos []Photo
	Base64 string
}

// PhotoRef resolves the stored photo fields once, preferring photos, then
// photo, then photoBase64.
func (e *JournalEntry) PhotoRef() PhotoRef {
	switch {
	case len(e.Photos) > 0:
		return PhotoRef{Kind: PhotoMultiple, Photos: append([]Photo(nil), e.Photos...)}
	case e.Photo != nil && e.Photo.URI != "":
		return PhotoRef{Kind: PhotoSingle, Photos: []Photo{*e.Photo}}
	case e.PhotoBase64 != "":
		return PhotoRef{Kind: PhotoInlineBase64, Base64: e.PhotoBase64}
	default:
		return PhotoRef{Kind: PhotoNone}
	}
}

// Images returns display sources: file uris, or a data uri for inline images.
func (r PhotoRef) Images() []string {
	switch r.Kind {
	case PhotoMultiple, PhotoSingle:
		out := make([]string, 0, len(r.Photos))
		for _, p := range r.Photos {
			out = append(out, p.URI)
		}
		return out
	case PhotoInlineBase64:
		return []string{"data:image/jpeg;base64," + r.Base64}
	default:
		return nil
	}
}

// Count is the number of images the reference resolves to.
func (r PhotoRef) Count() int {
	return len(r.Images())
}

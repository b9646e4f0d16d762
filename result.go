package webgrab

// CompanyInfo holds company metadata derived from the page head.
type CompanyInfo struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
	Title       string `json:"title,omitempty"`
}

// DefaultPhoneLabel is used for tel: links without any surrounding context.
const DefaultPhoneLabel = "General"

// MaxPhones is the maximum number of phone entries reported per page.
const MaxPhones = 15

// MaxAddressLength is the maximum address length in characters.
const MaxAddressLength = 200

// PhoneEntry is a phone number with the label found next to it
// (e.g., "Sales", "Fax").
type PhoneEntry struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// ContactInfo holds contact details found on the page.
type ContactInfo struct {
	Emails  []string     `json:"emails"`
	Phones  []PhoneEntry `json:"phones"`
	Address string       `json:"address,omitempty"`
}

// Social platform keys, in matching order.
const (
	PlatformLinkedIn  = "linkedin"
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformYouTube   = "youtube"
)

// Platforms lists the known social platforms in matching order.
var Platforms = []string{
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformFacebook,
	PlatformInstagram,
	PlatformYouTube,
}

// SocialLinks holds one profile URL per known platform.
// An empty string means the platform was not found.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// Get returns the URL stored for a platform key.
func (s *SocialLinks) Get(platform string) string {
	if p := s.field(platform); p != nil {
		return *p
	}
	return ""
}

// Set stores the URL for a platform key. Unknown keys are ignored.
func (s *SocialLinks) Set(platform, url string) {
	if p := s.field(platform); p != nil {
		*p = url
	}
}

// Found returns the non-empty platforms keyed by platform name.
func (s *SocialLinks) Found() map[string]string {
	found := make(map[string]string)
	for _, platform := range Platforms {
		if v := s.Get(platform); v != "" {
			found[platform] = v
		}
	}
	return found
}

func (s *SocialLinks) field(platform string) *string {
	switch platform {
	case PlatformLinkedIn:
		return &s.LinkedIn
	case PlatformTwitter:
		return &s.Twitter
	case PlatformFacebook:
		return &s.Facebook
	case PlatformInstagram:
		return &s.Instagram
	case PlatformYouTube:
		return &s.YouTube
	}
	return nil
}

// ImageKind classifies an image reference.
type ImageKind string

// Image kinds.
const (
	KindFavicon ImageKind = "favicon"
	KindLogo    ImageKind = "logo"
	KindImage   ImageKind = "image"
)

// ParseImageKind returns the kind named by s.
// Returns EINVALID for unknown kinds.
func ParseImageKind(s string) (ImageKind, error) {
	switch k := ImageKind(s); k {
	case KindFavicon, KindLogo, KindImage:
		return k, nil
	}
	return "", Errorf(EINVALID, "unknown image kind %q", s)
}

// ImageRef is an image found on the page. URL is always absolute.
type ImageRef struct {
	Kind ImageKind `json:"type"`
	URL  string    `json:"url"`
	Alt  string    `json:"alt,omitempty"`
}

// ExtractionResult aggregates everything extracted from one page.
type ExtractionResult struct {
	// URL is the final page URL after redirects.
	URL         string      `json:"url"`
	ContentHash string      `json:"contentHash"`
	Company     CompanyInfo `json:"company"`
	Contact     ContactInfo `json:"contact"`
	Social      SocialLinks `json:"social"`
	Images      []ImageRef  `json:"images"`
}

// ImageCount returns the number of image references, favicons included.
func (r *ExtractionResult) ImageCount() int {
	return len(r.Images)
}

// LogoCount returns the number of logos and favicons.
func (r *ExtractionResult) LogoCount() int {
	var n int
	for _, img := range r.Images {
		if img.Kind == KindLogo || img.Kind == KindFavicon {
			n++
		}
	}
	return n
}

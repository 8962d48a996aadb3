// Package attribution builds the tracking parameters and referral codes
// that tie registrations back to an influencer collaboration.
package attribution

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/growth-cli/internal/model"
)

// MediumInfluencer is the utm_medium for all influencer traffic.
const MediumInfluencer = "influencer"

// trackingNamespace scopes TrackingID values to this tool.
var trackingNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://playarena.gg/growth/tracking"))

// UTM holds campaign tracking parameters.
type UTM struct {
	Source   string `json:"utm_source"`
	Medium   string `json:"utm_medium"`
	Campaign string `json:"utm_campaign"`
	Content  string `json:"utm_content"`
}

// GenerateTrackingUTM builds UTM parameters for an influencer's posts on a
// platform. Content is the influencer handle, or the ID when no handle is set.
func GenerateTrackingUTM(inf *model.Influencer, campaign *model.Campaign, platform string) UTM {
	content := strings.TrimPrefix(strings.TrimSpace(inf.Handle), "@")
	if content == "" {
		content = inf.ID
	}
	return UTM{
		Source:   strings.ToLower(strings.TrimSpace(platform)),
		Medium:   MediumInfluencer,
		Campaign: campaign.ID,
		Content:  content,
	}
}

// Values returns the non-empty parameters as query values.
func (u UTM) Values() url.Values {
	v := url.Values{}
	for k, val := range map[string]string{
		"utm_source":   u.Source,
		"utm_medium":   u.Medium,
		"utm_campaign": u.Campaign,
		"utm_content":  u.Content,
	} {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// Apply adds the parameters to baseURL, keeping any existing query values
// that are not UTM keys.
func (u UTM) Apply(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", eris.Wrapf(err, "attribution: parse url %q", baseURL)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", eris.Errorf("attribution: url %q must be absolute", baseURL)
	}

	q := parsed.Query()
	for k, vals := range u.Values() {
		q[k] = vals
	}
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

var lower = cases.Lower(language.Und)

// GenerateReferralCode returns the first six ASCII letters of the lowercased
// name followed by the first four characters of the campaign ID, upper-cased.
// Codes are not guaranteed unique; use TrackingID as the collision-free key.
func GenerateReferralCode(name, campaignID string) string {
	var b strings.Builder
	for _, r := range lower.String(name) {
		if b.Len() == 6 {
			break
		}
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}

	prefix := []rune(campaignID)
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	b.WriteString(string(prefix))

	return strings.ToUpper(b.String())
}

// TrackingID returns a deterministic UUID for an influencer in a campaign.
func TrackingID(influencerID, campaignID string) uuid.UUID {
	return uuid.NewSHA1(trackingNamespace, []byte(influencerID+"\x00"+campaignID))
}

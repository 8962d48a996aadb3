package outreach

import (
	"sort"

	"github.com/sells-group/growth-cli/internal/model"
)

// DefaultBrand is the platform name used in pitches.
const DefaultBrand = "PlayArena"

// Template names.
const (
	InfluencerIntro       = "influencer_intro"
	InfluencerFollowUp    = "influencer_follow_up"
	CollaborationProposal = "collaboration_proposal"
	BacklinkPitchTier1    = "backlink_pitch_tier1"
	BacklinkPitchTier2    = "backlink_pitch_tier2"
	BacklinkPitchTier3    = "backlink_pitch_tier3"
)

var library = map[string]Template{
	InfluencerIntro: {
		Name:    InfluencerIntro,
		Subject: "{brand} x {name}: {game} tournament collaboration",
		Body: `Hi {name},

We host daily {game} tournaments on {brand} and your streams keep coming up in our community. We'd love to partner with you on {campaign_name}: your audience gets priority room access and you earn per deliverable plus a bonus on every paid registration.

Your referral code: {referral_code}

Open to a quick call this week?

{sender_name}
{brand}`,
		Variables: []string{"name", "brand", "game", "campaign_name", "referral_code", "sender_name"},
	},
	InfluencerFollowUp: {
		Name:    InfluencerFollowUp,
		Subject: "Following up: {campaign_name} on {brand}",
		Body: `Hi {name},

Bumping this in case it got buried. Slots for {campaign_name} are filling up and we'd still love to have you on board.

{sender_name}
{brand}`,
		Variables: []string{"name", "brand", "campaign_name", "sender_name"},
	},
	CollaborationProposal: {
		Name:    CollaborationProposal,
		Subject: "{campaign_name}: collaboration proposal for {name}",
		Body: `Hi {name},

Here is the proposal for {campaign_name}.

Deliverables: {deliverables}
Fee: {fee}
Tracking link: {tracking_link}

Reply to confirm and we'll send the brief.

{sender_name}
{brand}`,
		Variables: []string{"name", "brand", "campaign_name", "deliverables", "fee", "tracking_link", "sender_name"},
	},
	BacklinkPitchTier1: {
		Name:      BacklinkPitchTier1,
		Subject:   "Exclusive esports data for {domain}",
		Body:      "We can share exclusive tournament participation data and expert commentary from {brand} for an upcoming {domain} story on Indian mobile esports.",
		Variables: []string{"domain", "brand"},
	},
	BacklinkPitchTier2: {
		Name:      BacklinkPitchTier2,
		Subject:   "Guest guide for {domain} readers",
		Body:      "We'd like to contribute a practical guide for {domain} readers on joining and winning online tournaments, with {brand} as a resource.",
		Variables: []string{"domain", "brand"},
	},
	BacklinkPitchTier3: {
		Name:      BacklinkPitchTier3,
		Subject:   "Resource suggestion for {domain}",
		Body:      "{brand} lists free daily tournaments and could be a useful addition to the resources on {domain}.",
		Variables: []string{"domain", "brand"},
	},
}

// Lookup returns the built-in template with the given name.
func Lookup(name string) (Template, bool) {
	t, ok := library[name]
	if !ok {
		return Template{}, false
	}
	t.Variables = append([]string(nil), t.Variables...)
	return t, true
}

// Templates returns every built-in template, sorted by name.
func Templates() []Template {
	names := make([]string, 0, len(library))
	for n := range library {
		names = append(names, n)
	}
	sort.Strings(names)

	out := make([]Template, 0, len(names))
	for _, n := range names {
		t, _ := Lookup(n)
		out = append(out, t)
	}
	return out
}

// TierPitch returns the backlink pitch template for a prospect tier.
func TierPitch(tier model.ProspectTier) Template {
	name := BacklinkPitchTier3
	switch tier {
	case model.ProspectTier1:
		name = BacklinkPitchTier1
	case model.ProspectTier2:
		name = BacklinkPitchTier2
	}
	t, _ := Lookup(name)
	return t
}

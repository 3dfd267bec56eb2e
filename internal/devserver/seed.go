package devserver

import (
	"time"

	"github.com/google/uuid"

	"copticsocial/internal/domain"
	"copticsocial/internal/logic"
)

// AdminToken authenticates as the seeded parish administrator
const AdminToken = "admin-token"

// SeedID derives the stable id used for a seeded record
func SeedID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("copticsocial:"+name)).String()
}

var (
	stMark = domain.Parish{ID: SeedID("parish/st-mark"), Name: "St. Mark Coptic Orthodox Church", City: "Los Angeles"}
	stMary = domain.Parish{ID: SeedID("parish/st-mary"), Name: "St. Mary Coptic Orthodox Church", City: "Jersey City"}

	// DemoUser is the user requests without a token act as
	DemoUser = domain.User{
		ID:        SeedID("user/demo"),
		Username:  "demo",
		FirstName: "Mina",
		LastName:  "Girgis",
		ParishID:  stMark.ID,
	}

	// AdminUser administers every seeded group
	AdminUser = domain.User{
		ID:        SeedID("user/admin"),
		Username:  "fr.daniel",
		FirstName: "Daniel",
		LastName:  "Boulos",
		ParishID:  stMark.ID,
	}
)

type seedGroup struct {
	slug        string
	name        string
	description string
	groupType   domain.GroupType
	privacy     domain.Privacy
	parish      domain.Parish
	featured    bool
	approval    bool
	members     int
	maxMembers  int
	posts       int
}

var seedGroups = []seedGroup{
	{
		slug:        "midnight-praises",
		name:        "Midnight Praises",
		description: "Weekly **Tasbeha** on Saturday evenings.\n\nWe pray the midnight psalmody together and learn the hymns of the season.",
		groupType:   domain.GroupTypePrayer,
		privacy:     domain.PrivacyPublic,
		parish:      stMark,
		featured:    true,
		members:     42,
		posts:       18,
	},
	{
		slug:        "youth-bible-study",
		name:        "Youth Bible Study",
		description: "Bible study for high school students.\n\n- Gospel of St. John\n- Q&A with Abouna\n- Fellowship dinner",
		groupType:   domain.GroupTypeStudy,
		privacy:     domain.PrivacyParishOnly,
		parish:      stMark,
		members:     27,
		maxMembers:  40,
		posts:       31,
	},
	{
		slug:        "servants-committee",
		name:        "Servants Committee",
		description: "Coordination of Sunday school servants and service schedules.",
		groupType:   domain.GroupTypeCommittee,
		privacy:     domain.PrivacyPrivate,
		parish:      stMark,
		approval:    true,
		members:     12,
		posts:       54,
	},
	{
		slug:        "food-pantry",
		name:        "Food Pantry Outreach",
		description: "Serving our neighbours every first Saturday. Volunteers *always* welcome.",
		groupType:   domain.GroupTypeService,
		privacy:     domain.PrivacyPublic,
		parish:      stMary,
		featured:    true,
		members:     63,
		posts:       12,
	},
	{
		slug:        "hymns-choir",
		name:        "Hymns & Coptic Choir",
		description: "Learning Coptic hymns and the Coptic language for the liturgy.",
		groupType:   domain.GroupTypeMinistry,
		privacy:     domain.PrivacyPublic,
		parish:      stMary,
		approval:    true,
		members:     19,
		posts:       7,
	},
	{
		slug:        "young-families",
		name:        "Young Families",
		description: "Playdates, retreats and support for families with young children.",
		groupType:   domain.GroupTypeAgeBased,
		privacy:     domain.PrivacyParishOnly,
		parish:      stMary,
		members:     35,
		posts:       22,
	},
	{
		slug:        "church-fathers",
		name:        "Church Fathers Reading Circle",
		description: "Reading St. Athanasius, St. Cyril and the desert fathers.",
		groupType:   domain.GroupTypeInterest,
		privacy:     domain.PrivacyPublic,
		parish:      stMark,
		members:     14,
		posts:       9,
	},
	{
		slug:        "deacons",
		name:        "Deacons Council",
		description: "Invitation only council of the parish deacons.",
		groupType:   domain.GroupTypeMinistry,
		privacy:     domain.PrivacyInviteOnly,
		parish:      stMark,
		members:     8,
		posts:       3,
	},
	{
		slug:        "summer-social",
		name:        "Summer Social",
		description: "Picnics, sports day and the annual church trip.",
		groupType:   domain.GroupTypeSocial,
		privacy:     domain.PrivacyPublic,
		parish:      stMark,
		members:     51,
		posts:       15,
	},
}

func seed(s *Server) {
	s.anon = DemoUser
	s.AddUser(DemoToken, DemoUser)
	s.AddUser(AdminToken, AdminUser)

	created := time.Date(2024, time.September, 1, 9, 0, 0, 0, time.UTC)
	for i, sg := range seedGroups {
		g := &domain.Group{
			ID:              SeedID("group/" + sg.slug),
			Name:            sg.name,
			Description:     sg.description,
			GroupType:       sg.groupType,
			Privacy:         sg.privacy,
			Parish:          sg.parish,
			IsActive:        true,
			IsFeatured:      sg.featured,
			RequireApproval: sg.approval,
			MemberCount:     sg.members,
			PostCount:       sg.posts,
			CreatedAt:       created.AddDate(0, 0, 7*i),
		}
		if sg.maxMembers > 0 {
			limit := sg.maxMembers
			g.MaxMembers = &limit
		}
		s.groups.AddGroup(g)
		s.members.SaveMember(logic.Member{
			GroupID:  g.ID,
			UserID:   AdminUser.ID,
			Role:     domain.RoleAdmin,
			IsActive: true,
			JoinedAt: g.CreatedAt,
		})
	}

	s.members.SaveMember(logic.Member{
		GroupID:  SeedID("group/midnight-praises"),
		UserID:   DemoUser.ID,
		Role:     domain.RoleMember,
		IsActive: true,
		JoinedAt: created.AddDate(0, 1, 0),
	})
}

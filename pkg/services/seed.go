package services

import "workblox-site/pkg/models"

// DefaultCatalog returns the hand-authored article collection the site ships
// with. Slice order is the canonical catalog order.
func DefaultCatalog() []models.Article {
	return []models.Article{
		{
			ID:              "1",
			Title:           "Introducing Workblox AI Assist",
			Type:            models.TypeProductUpdate,
			Status:          models.StatusPublished,
			Author:          models.Author{Name: "Maya Chen", AvatarInitials: "MC", Role: "Head of Product"},
			PublishedDate:   "2026-07-14T09:00:00Z",
			ReadTimeMinutes: 4,
			Views:           12840,
			Reactions:       312,
			Badge:           models.BadgeNew,
			Excerpt:         "AI Assist drafts tasks, summarizes threads, and automates the busywork out of your workspace.",
			Content: models.Content{
				Introduction: "AI Assist is now available to every Workblox workspace on the Pro plan.",
				Sections: []models.Section{
					{Title: "Draft anything", Content: "Turn a one-line prompt into a fully structured project plan, complete with owners and due dates."},
					{Title: "Automate the busywork", Content: "AI Assist watches for repetitive patterns and proposes automations you can enable with one click."},
				},
				Conclusion: "Enable AI Assist from workspace settings today.",
			},
			Tags:     []string{"AI", "Automation"},
			Category: "Features",
			Featured: true,
			ImageURL: "/images/articles/ai-assist.png",
		},
		{
			ID:              "2",
			Title:           "Getting Started with Workspaces",
			Type:            models.TypeGuide,
			Status:          models.StatusPublished,
			Author:          models.Author{Name: "Jordan Reyes", AvatarInitials: "JR", Role: "Customer Education"},
			PublishedDate:   "2026-06-30T10:00:00Z",
			ReadTimeMinutes: 7,
			Views:           9310,
			Reactions:       187,
			Excerpt:         "Everything you need to set up your first workspace, invite your team, and ship your first project.",
			Content: models.Content{
				Introduction: "A workspace is the home for everything your team does in Workblox.",
				Sections: []models.Section{
					{Title: "Create your workspace", Content: "Pick a name, a URL, and an icon. You can change all three later."},
					{Title: "Invite your team", Content: "Members join with a link; guests can be scoped to a single project."},
					{Title: "Ship your first project", Content: "Start from a template or a blank board and add your first tasks."},
				},
				Conclusion: "That's it. You're ready to work.",
			},
			Tags:     []string{"Onboarding", "Workspaces"},
			Category: "Guides",
			Featured: true,
		},
		{
			ID:              "3",
			Title:           "How We Think About Roadmaps",
			Type:            models.TypeArticle,
			Status:          models.StatusPublished,
			Author:          models.Author{Name: "Priya Nair", AvatarInitials: "PN", Role: "Co-founder"},
			PublishedDate:   "2026-06-12T08:00:00Z",
			ReadTimeMinutes: 6,
			Views:           7205,
			Reactions:       264,
			Excerpt:         "Why we publish our roadmap in the open, and how customer feedback actually changes it.",
			Content: models.Content{
				Introduction: "Our roadmap is a conversation, not a contract.",
				Sections: []models.Section{
					{Title: "Open by default", Content: "Every planned feature is public from the day we commit to it."},
				},
				Conclusion: "Vote on what matters to you — we read every request.",
			},
			Tags:     []string{"Roadmap", "Culture"},
			Category: "Company",
			Featured: false,
		},
		{
			ID:              "4",
			Title:           "Workblox 2.4 Release Notes",
			Type:            models.TypeReleaseNotes,
			Status:          models.StatusPublished,
			Author:          models.Author{Name: "Sam Okafor", AvatarInitials: "SO", Role: "Engineering"},
			PublishedDate:   "2026-08-02T12:00:00Z",
			ReadTimeMinutes: 3,
			Views:           5480,
			Reactions:       98,
			Badge:           models.BadgeImproved,
			Excerpt:         "Faster automation runs, a reworked API rate limiter, and thirty smaller fixes.",
			Content: models.Content{
				Introduction: "Version 2.4 is rolling out to all workspaces this week.",
				Sections: []models.Section{
					{Title: "Automation", Content: "Automation runs start up to 4x faster on large boards."},
					{Title: "API", Content: "Rate limits are now per-token instead of per-workspace."},
				},
				Conclusion: "See the changelog for the full list.",
			},
			Tags:     []string{"Automation", "API"},
			Category: "Releases",
			Featured: false,
		},
		{
			ID:              "5",
			Title:           "Workblox for Mobile",
			Type:            models.TypeProductUpdate,
			Status:          models.StatusPublished,
			Author:          models.Author{Name: "Maya Chen", AvatarInitials: "MC", Role: "Head of Product"},
			PublishedDate:   "2026-07-28T09:00:00Z",
			ReadTimeMinutes: 5,
			Views:           15120,
			Reactions:       441,
			Badge:           models.BadgePopular,
			Excerpt:         "The full Workblox experience, redesigned for your phone. Boards, inbox, and approvals on the go.",
			Content: models.Content{
				Introduction: "Workblox for iOS and Android is out of beta.",
				Sections: []models.Section{
					{Title: "Built for one hand", Content: "Every board action is reachable with your thumb."},
				},
				Conclusion: "Download it from the App Store or Google Play.",
			},
			Tags:     []string{"Mobile"},
			Category: "Features",
			Featured: true,
			ImageURL: "/images/articles/mobile.png",
		},
		{
			ID:              "6",
			Title:           "Automation Recipes You Should Steal",
			Type:            models.TypeGuide,
			Status:          models.StatusPublished,
			Author:          models.Author{Name: "Jordan Reyes", AvatarInitials: "JR", Role: "Customer Education"},
			PublishedDate:   "2026-08-18T10:00:00Z",
			ReadTimeMinutes: 8,
			Views:           4102,
			Reactions:       156,
			Excerpt:         "Six automations our power users run every day, from stand-up digests to AI-written status updates.",
			Content: models.Content{
				Introduction: "You don't need to invent your own automations — start from these.",
				Sections: []models.Section{
					{Title: "The stand-up digest", Content: "Collect yesterday's completed tasks into a channel post every morning."},
					{Title: "AI status updates", Content: "Let AI Assist draft the weekly status update from board activity."},
				},
				Conclusion: "Copy any recipe into your workspace with one click.",
			},
			Tags:     []string{"Automation", "AI", "Workflows"},
			Category: "Guides",
			Featured: false,
		},
	}
}

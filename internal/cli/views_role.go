package cli

import "github.com/oahconnect/carelink/internal/domain"

// viewsForRole builds the tab set for the logged-in role. Tabs are
// keyed by construction order; number keys map to positions.
func viewsForRole(state *SharedState) []View {
	switch state.Role() {
	case domain.RoleResident:
		return []View{
			newDashboardView(state),
			newRequestsView(state, requestsModeResident),
			newMarketplaceView(state),
			newCompanionshipView(state),
			newMessagesView(state),
			newProfileView(state, profileModeProfile),
		}
	case domain.RoleVolunteer:
		return []View{
			newDashboardView(state),
			newTasksView(state),
			newMessagesView(state),
			newProfileView(state, profileModeProfile),
		}
	case domain.RoleAdmin:
		return []View{
			newDashboardView(state),
			newRequestsView(state, requestsModeAdmin),
			newTasksView(state),
			newFundraisingView(state),
			newAnalyticsView(state),
			newProfileView(state, profileModeSettings),
		}
	}
	return nil
}

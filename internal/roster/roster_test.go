package roster

import (
	"testing"

	"github.com/barsleague/rosterize/internal/hierconf"
)

// testCatalogYAML is a trimmed catalog exercising every section flavor:
// tree sections with and without sub-sections/teams, a list section, and
// WTNB-qualified entries declared ahead of the generic patterns they
// overlap with.
const testCatalogYAML = `
version: "test"
sections:
  executive_board:
    name: Executive Board
    headers: [EXECUTIVE BOARD]
    positions:
      - role: commissioner
        title: Commissioner
        match:
          exact: [Commissioner]
        required: true
      - role: vice_commissioner
        title: Vice Commissioner
        match:
          patterns: [[vice, commissioner]]
        required: true
  cross_sport:
    name: Cross-Sport Leadership Team
    headers: [CROSS-SPORT LEADERSHIP TEAM]
    positions:
      - role: operations_director
        title: Operations Director
        match:
          patterns: [[operations, director]]
  committee_members:
    name: Committee Members
    headers: [COMMITTEE MEMBERS]
    is_list: true
  bowling:
    name: Bowling Leadership Team
    headers: [BOWLING LEADERSHIP TEAM]
    positions:
      - role: director
        sub_section: sunday
        title: Director of Bowling, Sunday
        match:
          patterns: [[director, bowling, sunday]]
        required: true
      - role: ops_manager
        sub_section: sunday
        title: Operations Manager, Bowling (Sunday)
        match:
          patterns:
            - [operations, bowling, sunday]
            - [ops, bowling, sunday]
  dodgeball:
    name: Dodgeball Leadership Team
    headers: [DODGEBALL LEADERSHIP TEAM]
    positions:
      - role: director
        sub_section: wtnb
        title: WTNB+ Director, Dodgeball
        match:
          patterns: [[wtnb, director]]
        required: true
      - role: player_experience
        sub_section: wtnb
        title: WTNB+ Player Experience Manager, Dodgeball
        match:
          patterns: [[wtnb, player, experience]]
      - role: director
        sub_section: open
        team: big_ball
        title: Director, Big Ball
        match:
          patterns: [[director, big, ball]]
      - role: player_experience
        sub_section: open
        title: Player Experience Manager, Dodgeball
        match:
          patterns: [[player, experience]]
  kickball:
    name: Kickball Leadership Team
    headers: [KICKBALL LEADERSHIP TEAM]
    positions:
      - role: director
        sub_section: sunday
        title: Director of Kickball, Sunday
        match:
          patterns: [[director, kickball, sunday]]
  pickleball:
    name: Pickleball Leadership Team
    headers: [PICKLEBALL LEADERSHIP TEAM]
    positions:
      - role: director
        title: Director of Pickleball
        match:
          patterns: [[director, pickleball]]
`

func testCatalog(t *testing.T) *hierconf.Catalog {
	t.Helper()
	catalog, err := hierconf.Parse([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("parse test catalog: %v", err)
	}
	return catalog
}

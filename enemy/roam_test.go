package enemy_test

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/fireteam/enemy"
	"github.com/milk9111/fireteam/nav"
	"github.com/milk9111/fireteam/nav/mock_nav"
)

type RoamTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockNav *mock_nav.MockAgent
	cfg     enemy.Config
	center  mgl64.Vec3
}

func (s *RoamTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNav = mock_nav.NewMockAgent(s.ctrl)
	s.center = mgl64.Vec3{2, 0, 3}

	s.cfg = enemy.DefaultConfig()
	s.cfg.PickAttempts = 5
	s.cfg.WaitMin = 2
	s.cfg.WaitMax = 2

	s.mockNav.EXPECT().SetSpeed(gomock.Any()).AnyTimes()
	s.mockNav.EXPECT().Position().Return(s.center).AnyTimes()
}

func (s *RoamTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RoamTestSuite) newAgent() *enemy.Agent {
	return enemy.NewAgent(s.cfg, enemy.Deps{
		Nav:  s.mockNav,
		Rand: rand.New(rand.NewSource(42)),
	})
}

func (s *RoamTestSuite) expectPath(pending, hasPath bool, remaining float64, status nav.PathStatus) {
	s.mockNav.EXPECT().SetStopped(false).AnyTimes()
	s.mockNav.EXPECT().PathPending().Return(pending).AnyTimes()
	s.mockNav.EXPECT().HasPath().Return(hasPath).AnyTimes()
	s.mockNav.EXPECT().RemainingDistance().Return(remaining).AnyTimes()
	s.mockNav.EXPECT().StoppingDistance().Return(0.0).AnyTimes()
	s.mockNav.EXPECT().PathStatus().Return(status).AnyTimes()
}

func (s *RoamTestSuite) TestExhaustedSearchRetriesAfterHalfSecond() {
	s.mockNav.EXPECT().SamplePosition(gomock.Any(), s.cfg.SampleDistance).Return(mgl64.Vec3{}, false).Times(5)
	s.mockNav.EXPECT().SetDestination(gomock.Any()).Times(0)

	a := s.newAgent()
	a.Start(10)

	s.Equal(10.5, a.NextRoamPick())
	s.Equal(s.center, a.RoamCenter())
}

func (s *RoamTestSuite) TestCandidatesStayWithinRadius() {
	s.mockNav.EXPECT().SamplePosition(gomock.Any(), s.cfg.SampleDistance).
		DoAndReturn(func(p mgl64.Vec3, _ float64) (mgl64.Vec3, bool) {
			s.Zero(p[1])
			s.LessOrEqual(p.Sub(s.center).Len(), s.cfg.RoamRadius+1e-9)
			return mgl64.Vec3{}, false
		}).Times(5)

	s.newAgent().Start(0)
}

func (s *RoamTestSuite) TestArrivedAgentHoldsUntilWaitExpires() {
	point := mgl64.Vec3{4, 0, 4}
	s.mockNav.EXPECT().SamplePosition(gomock.Any(), s.cfg.SampleDistance).Return(point, true).Times(2)
	s.mockNav.EXPECT().SetDestination(point).Return(true).Times(2)
	s.mockNav.EXPECT().SetVelocity(mgl64.Vec3{}).Times(1)
	s.expectPath(false, true, 0.1, nav.PathComplete)

	a := s.newAgent()
	a.Start(0)
	s.Equal(2.0, a.NextRoamPick())

	a.Update(1, 0.1)
	s.Equal("roam", a.State())
	s.Equal(2.0, a.NextRoamPick(), "still waiting")

	a.Update(2.5, 0.1)
	s.Equal(4.5, a.NextRoamPick())
}

func (s *RoamTestSuite) TestInvalidPathPicksAgain() {
	point := mgl64.Vec3{1, 0, 1}
	s.mockNav.EXPECT().SamplePosition(gomock.Any(), s.cfg.SampleDistance).Return(point, true).Times(2)
	s.mockNav.EXPECT().SetDestination(point).Return(true).Times(2)
	s.expectPath(false, true, 6, nav.PathPartial)

	a := s.newAgent()
	a.Start(0)
	a.Update(2, 0.1)
}

func (s *RoamTestSuite) TestDisabledRoamingIdles() {
	s.cfg.Roam = false
	s.mockNav.EXPECT().SetStopped(false).Times(1)
	s.mockNav.EXPECT().ResetPath().Times(1)

	a := s.newAgent()
	a.Start(0)
	a.Update(0.1, 0.1)
	s.Equal("idle", a.State())
}

func TestRoamTestSuite(t *testing.T) {
	suite.Run(t, new(RoamTestSuite))
}

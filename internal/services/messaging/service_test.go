package messaging

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/kostka/internal/services/opponent"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service *service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.service = New(&Config{Seed: 42})
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

var allSituations = []Situation{
	SituationTurnStart,
	SituationBust,
	SituationHotDice,
	SituationBank,
	SituationStop,
	SituationWin,
	SituationOpponentBust,
}

func (s *MessagingServiceTestSuite) TestEveryOpponentHasEverySituation() {
	for _, id := range []opponent.Personality{
		opponent.PersonalityCautious,
		opponent.PersonalityBalanced,
		opponent.PersonalityReckless,
	} {
		for _, situation := range allSituations {
			output, err := s.service.GetOpponentLine(s.ctx, &GetOpponentLineInput{
				OpponentID: id,
				Situation:  situation,
				PlayerName: "Petr",
			})
			s.Require().NoError(err, "%s/%s", id, situation)
			s.Contains(s.linesFor(id, situation, "Petr"), output.Line)
		}
	}
}

func (s *MessagingServiceTestSuite) TestOpponentBustNamesThePlayer() {
	for i := 0; i < 10; i++ {
		output, err := s.service.GetOpponentLine(s.ctx, &GetOpponentLineInput{
			OpponentID: opponent.PersonalityReckless,
			Situation:  SituationOpponentBust,
			PlayerName: "Petr",
		})
		s.Require().NoError(err)
		s.Contains(output.Line, "Petr")
		s.NotContains(output.Line, "%")
	}
}

func (s *MessagingServiceTestSuite) TestSameSeedSameLines() {
	other := New(&Config{Seed: 42})
	input := &GetOpponentLineInput{
		OpponentID: opponent.PersonalityBalanced,
		Situation:  SituationTurnStart,
	}

	for i := 0; i < 5; i++ {
		a, err := s.service.GetOpponentLine(s.ctx, input)
		s.Require().NoError(err)
		b, err := other.GetOpponentLine(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(a.Line, b.Line)
	}
}

func (s *MessagingServiceTestSuite) TestGetOpponentLine_Unknown() {
	_, err := s.service.GetOpponentLine(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.GetOpponentLine(s.ctx, &GetOpponentLineInput{
		OpponentID: "nobody",
		Situation:  SituationBust,
	})
	s.ErrorIs(err, ErrUnknownOpponent)

	_, err = s.service.GetOpponentLine(s.ctx, &GetOpponentLineInput{
		OpponentID: opponent.PersonalityCautious,
		Situation:  "tea_break",
	})
	s.ErrorIs(err, ErrUnknownSituation)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeHotDiceMustRoll})
	s.Require().NoError(err)
	s.Contains(errorMessages[ErrorTypeHotDiceMustRoll], output.Message)

	output, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: "made_up"})
	s.Require().NoError(err)
	s.Contains(errorMessages[ErrorTypeUnknown], output.Message)

	_, err = s.service.GetErrorMessage(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *MessagingServiceTestSuite) linesFor(id opponent.Personality, situation Situation, playerName string) []string {
	lines := opponentLines[id][situation]
	if situation != SituationOpponentBust {
		return lines
	}

	formatted := make([]string, 0, len(lines))
	for _, line := range lines {
		formatted = append(formatted, fmt.Sprintf(line, playerName))
	}
	return formatted
}

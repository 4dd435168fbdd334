package handler

import (
	"innovest/internal/infrastructure/live"
	"innovest/internal/usecase"
)

var (
	authHandler         *AuthHandler
	profileHandler      *ProfileHandler
	conversationHandler *ConversationHandler
	matchHandler        *MatchHandler
	pitchHandler        *PitchHandler
	assistantHandler    *AssistantHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	messagingUseCase *usecase.MessagingUseCase,
	matchmakingUseCase *usecase.MatchmakingUseCase,
	pitchUseCase *usecase.PitchUseCase,
	assistantUseCase *usecase.AssistantUseCase,
	sessions *live.Sessions,
) {
	authHandler = NewAuthHandler(authUseCase, sessions)
	profileHandler = NewProfileHandler(authUseCase)
	conversationHandler = NewConversationHandler(messagingUseCase)
	matchHandler = NewMatchHandler(matchmakingUseCase)
	pitchHandler = NewPitchHandler(pitchUseCase)
	assistantHandler = NewAssistantHandler(assistantUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetConversationHandler() *ConversationHandler {
	return conversationHandler
}

func GetMatchHandler() *MatchHandler {
	return matchHandler
}

func GetPitchHandler() *PitchHandler {
	return pitchHandler
}

func GetAssistantHandler() *AssistantHandler {
	return assistantHandler
}

package service

import "errors"

var (
	ErrAuthRequired           = errors.New("authentication required")
	ErrDestinationNotFound    = errors.New("destination not found")
	ErrReviewValidation       = errors.New("review validation failed")
	ErrPreferencesValidation  = errors.New("preferences validation failed")
	ErrRegistrationValidation = errors.New("registration validation failed")
	ErrCredentialsRequired    = errors.New("email and password are required")
)

// Visitor facing messages.
const (
	MsgAuthRequiredFavorite = "Connectez-vous pour ajouter aux favoris !"
	MsgFavoriteAdded        = "Ajouté aux favoris ❤️"
	MsgFavoriteRemoved      = "Retiré des favoris"
	MsgFavoriteFailed       = "Erreur lors de la mise à jour"
	MsgPreferencesSaved     = "Préférences enregistrées avec succès!"
	MsgPreferencesFailed    = "Une erreur s'est produite"
	MsgReviewSent           = "Merci pour votre avis !"
	MsgLoggedOut            = "Vous êtes déconnecté."
	MsgSearchFailed         = "Erreur lors de la recherche"
)

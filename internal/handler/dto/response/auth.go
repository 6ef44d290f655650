package response

import "minutes-recharge/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                         `json:"access_token"`
	ExpiresIn   int64                          `json:"expires_in"`
	Account     *readmodel.AuthorizedAccountRM `json:"account"`
}

package checkout

import "errors"

var ErrPaymentDeclined = errors.New("payment declined")

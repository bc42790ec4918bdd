package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/groph-orders/internal/domain"
)

// validateScene проверяет, что поле содержит известную сцену заказа.
func validateScene(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch domain.OrderScene(str) {
	case domain.SceneTable, domain.ScenePickup, domain.SceneDelivery,
		domain.SceneCoupon, domain.SceneBill, domain.SceneDirectPay:
		return true
	default:
		return false
	}
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("order_scene", validateScene); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}

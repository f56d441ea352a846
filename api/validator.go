package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/merrydance/routeplan/algorithm"
)

// registerCustomValidators 注册自定义验证器
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// 注册车型验证器
		v.RegisterValidation("validVehicle", validVehicle)
		// 注册订单规格验证器
		v.RegisterValidation("validSizeClass", validSizeClass)
	}
}

// validVehicle 验证车型是否在运力档案中
var validVehicle validator.Func = func(fl validator.FieldLevel) bool {
	vt, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return algorithm.IsKnownVehicle(algorithm.VehicleType(vt))
}

// validSizeClass 验证订单规格
var validSizeClass validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch algorithm.SizeClass(s) {
	case algorithm.SizeSmall, algorithm.SizeMedium, algorithm.SizeLarge, algorithm.SizeExtraLarge:
		return true
	}
	return false
}

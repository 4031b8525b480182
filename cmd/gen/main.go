package main

import (
	"plaza/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CustomerProfileModel{},
		model.BusinessUserProfileModel{},
		model.StaffUserProfileModel{},
		model.BusinessModel{},
		model.PlatformPlanModel{},
		model.BusinessCustomerModel{},
		model.RefreshTokenModel{},
		model.AddressModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}

package converter

import (
	"brand_site/internal/api/dto/wheel"
	"brand_site/internal/model"
)

func ToWheelSpin(req wheel.SpinRequest) model.WheelSpin {
	return model.WheelSpin{
		CurrentRotation: req.CurrentRotation,
		ProposedPrize:   req.Prize,
	}
}

func ToPrizeResponse(p model.Prize) wheel.PrizeResponse {
	return wheel.PrizeResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		AssociatedArea: p.AssociatedArea,
		Note:           p.Note,
	}
}

func ToStatusResponse(s model.SpinStatus) wheel.StatusResponse {
	res := wheel.StatusResponse{HasSpun: s.HasSpun}
	if s.Prize != nil {
		prize := ToPrizeResponse(*s.Prize)
		res.Prize = &prize
	}
	return res
}

func ToWheelResponse(w model.Wheel) wheel.WheelResponse {
	prizes := make([]wheel.PrizeResponse, len(w.Prizes))
	for i, p := range w.Prizes {
		prizes[i] = ToPrizeResponse(p)
	}

	return wheel.WheelResponse{
		Prizes: prizes,
		Status: ToStatusResponse(w.Status),
	}
}

func ToSpinResponse(r model.WheelSpinResult) wheel.SpinResponse {
	return wheel.SpinResponse{
		Success:        true,
		Prize:          ToPrizeResponse(r.Prize),
		TargetRotation: r.TargetRotation,
		ExtraTurns:     r.ExtraTurns,
	}
}

func ToStatsResponse(stats []model.PrizeStat) []wheel.StatResponse {
	result := make([]wheel.StatResponse, len(stats))
	for i, s := range stats {
		result[i] = wheel.StatResponse{
			Prize:     ToPrizeResponse(s.Prize),
			Awarded:   s.Awarded,
			LastAward: s.LastAward,
		}
	}
	return result
}

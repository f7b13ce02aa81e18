package usecase

import (
	"time"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
)

func toActivityResponse(a *entity.Activity, now time.Time) *dto.ActivityResponse {
	if a == nil {
		return nil
	}
	end := a.EndTime
	if end == "" {
		_, e := schedule.Bounds(a)
		end = schedule.FormatHHMM(e)
	}
	return &dto.ActivityResponse{
		ID:             a.ID,
		CollaboratorID: a.CollaboratorID,
		Day:            a.Day,
		Time:           a.Time,
		EndTime:        end,
		Description:    a.Description,
		Completed:      a.Completed,
		CompletedAt:    a.CompletedAt,
		Status:         string(schedule.Classify(a, now)),
	}
}

func toActivityList(list []*entity.Activity, now time.Time) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toActivityResponse(a, now))
	}
	return out
}

func toCollaboratorResponse(c *entity.Principal) dto.CollaboratorResponse {
	out := dto.CollaboratorResponse{
		ID:             c.ID,
		Name:           c.Name,
		EmployeeNumber: c.EmployeeNumber,
		IsFirstLogin:   c.IsFirstLogin,
		CreatedAt:      c.CreatedAt,
	}
	if c.Profile != nil {
		out.RoleTitle = c.Profile.RoleTitle
		out.Shift = string(c.Profile.Shift)
		out.AvatarInitials = c.Profile.AvatarInitials
		out.ManagerID = c.Profile.ManagerID
	}
	return out
}

func toBranchResponse(b entity.BranchConfig) dto.BranchConfigResponse {
	return dto.BranchConfigResponse{
		ManagerID: b.ManagerID,
		Name:      b.Name,
		CECO:      b.CECO,
		Region:    b.Region,
		Territory: b.Territory,
	}
}

func toShiftResponse(s entity.ShiftConfig) dto.ShiftConfigResponse {
	conv := func(x entity.ShiftSchedule) dto.ShiftScheduleDTO {
		return dto.ShiftScheduleDTO{Start: x.Start, End: x.End, Lunch: append([]string{}, x.Lunch...)}
	}
	return dto.ShiftConfigResponse{ManagerID: s.ManagerID, Matutino: conv(s.Matutino), Vespertino: conv(s.Vespertino)}
}

func toDefinitionResponse(d entity.ActivityDefinition) dto.ActivityDefinitionResponse {
	return dto.ActivityDefinitionResponse{ID: d.ID, ManagerID: d.ManagerID, Name: d.Name}
}

func toContactResponse(c entity.EmergencyContact) dto.EmergencyContactResponse {
	return dto.EmergencyContactResponse{ID: c.ID, ManagerID: c.ManagerID, Name: c.Name, Phone: c.Phone}
}

package FlagGateGRPC

import (
	"context"

	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
	"gitlab.com/devpro_studio/FlagGate/src/service/EvaluatorService"
	"gitlab.com/devpro_studio/FlagGate/src/service/StatsService"
	"gitlab.com/devpro_studio/Paranoia/paranoia/controller"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/pkg/server/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Controller struct {
	controller.Mock
	UnimplementedFlagGateServer
	evaluator    EvaluatorService.Interface
	statsService StatsService.Interface
}

func NewController(name string) *Controller {
	return &Controller{
		Mock: controller.Mock{
			NamePkg: name,
		},
	}
}

func NewForTest(evaluator EvaluatorService.Interface, stats StatsService.Interface) *Controller {
	return &Controller{evaluator: evaluator, statsService: stats}
}

func (t *Controller) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	app.GetPkg(interfaces.PkgServer, names.GrpcServer).(grpc.IGrpc).RegisterService(&FlagGate_ServiceDesc, t)
	t.evaluator = app.GetModule(interfaces.ModuleService, names.EvaluatorService).(EvaluatorService.Interface)
	t.statsService = app.GetModule(interfaces.ModuleService, names.StatsService).(StatsService.Interface)

	return nil
}

func (t *Controller) IsEnabled(c context.Context, request *structpb.Struct) (*wrapperspb.BoolValue, error) {
	flagId, subject, err := flagRequest(request)
	if err != nil {
		return nil, err
	}

	enabled := t.evaluator.IsEnabled(flagId, subject)
	if enabled {
		t.statsService.SetStat(c, flagId)
	}
	return wrapperspb.Bool(enabled), nil
}

func (t *Controller) GetVariant(c context.Context, request *structpb.Struct) (*structpb.Value, error) {
	flagId, subject, err := flagRequest(request)
	if err != nil {
		return nil, err
	}

	v := t.evaluator.GetVariant(flagId, subject)
	if v == nil {
		return structpb.NewNullValue(), nil
	}
	t.statsService.SetStat(c, flagId)
	return structpb.NewStringValue(string(*v)), nil
}

func (t *Controller) Evaluate(c context.Context, request *structpb.Struct) (*structpb.Struct, error) {
	flagId, subject, err := flagRequest(request)
	if err != nil {
		return nil, err
	}

	res := t.evaluator.Evaluate(flagId, subject)
	if res.Enabled {
		t.statsService.SetStat(c, flagId)
	}
	return assignmentStruct(res), nil
}

func (t *Controller) EvaluateAll(c context.Context, request *structpb.Struct) (*structpb.ListValue, error) {
	subject, err := subjectRequest(request)
	if err != nil {
		return nil, err
	}

	items := t.evaluator.EvaluateAll(subject)
	out := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(items))}
	for _, it := range items {
		if it.Enabled {
			t.statsService.SetStat(c, it.FlagID)
		}
		out.Values = append(out.Values, structpb.NewStructValue(assignmentStruct(it)))
	}
	return out, nil
}

func flagRequest(request *structpb.Struct) (string, dto.Subject, error) {
	flagId := request.GetFields()[FieldFlagID].GetStringValue()
	if flagId == "" {
		return "", dto.Subject{}, status.Error(codes.InvalidArgument, "flag_id required")
	}
	subject, err := subjectRequest(request)
	return flagId, subject, err
}

func subjectRequest(request *structpb.Struct) (dto.Subject, error) {
	fields := request.GetFields()
	subject := dto.Subject{
		ID:   fields[FieldSubjectID].GetStringValue(),
		Role: fields[FieldRole].GetStringValue(),
	}
	if subject.ID == "" {
		return subject, status.Error(codes.InvalidArgument, "subject_id required")
	}
	return subject, nil
}

func assignmentStruct(a dto.Assignment) *structpb.Struct {
	variant := structpb.NewNullValue()
	if a.Variant != nil {
		variant = structpb.NewStringValue(string(*a.Variant))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldFlagID:  structpb.NewStringValue(a.FlagID),
		FieldEnabled: structpb.NewBoolValue(a.Enabled),
		FieldVariant: variant,
		FieldReason:  structpb.NewStringValue(string(a.Reason)),
	}}
}

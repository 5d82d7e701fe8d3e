package gdscript

import (
	"strings"
)

// ClassFromRaw converts one raw class record into a Class. Any required key
// missing from the record or one of its nested entries yields a MissingField
// error; construction-time filtering (private members, builtin callbacks,
// scalar constants) is the only transformation applied.
func ClassFromRaw(data Raw) (Class, error) {
	rawDescription, err := rawString("class", data, "description")
	if err != nil {
		return Class{}, err
	}
	description, tags, category := ExtractMetadata(rawDescription)

	name, err := rawString("class", data, "name")
	if err != nil {
		return Class{}, err
	}
	extends, err := rawStringList("class", data, "extends_class")
	if err != nil {
		return Class{}, err
	}
	path, err := rawString("class", data, "path")
	if err != nil {
		return Class{}, err
	}

	methods, err := rawMapList("class", data, "methods")
	if err != nil {
		return Class{}, err
	}
	functions, err := functionsFromRaw(methods, false)
	if err != nil {
		return Class{}, err
	}
	statics, err := rawMapList("class", data, "static_functions")
	if err != nil {
		return Class{}, err
	}
	staticFunctions, err := functionsFromRaw(statics, true)
	if err != nil {
		return Class{}, err
	}
	functions = append(functions, staticFunctions...)

	memberEntries, err := rawMapList("class", data, "members")
	if err != nil {
		return Class{}, err
	}
	members, err := membersFromRaw(memberEntries)
	if err != nil {
		return Class{}, err
	}
	signalEntries, err := rawMapList("class", data, "signals")
	if err != nil {
		return Class{}, err
	}
	signals, err := signalsFromRaw(signalEntries)
	if err != nil {
		return Class{}, err
	}
	constants, err := rawMapList("class", data, "constants")
	if err != nil {
		return Class{}, err
	}
	enums, err := enumsFromRaw(constants)
	if err != nil {
		return Class{}, err
	}

	return Class{
		Name:        name,
		Extends:     extends,
		Description: strings.Trim(description, " \n"),
		Path:        path,
		Functions:   functions,
		Members:     members,
		Signals:     signals,
		Enums:       enums,
		Tags:        tags,
		Category:    category,
	}, nil
}

// ProjectInfoFromRaw reads the dump's project header.
func ProjectInfoFromRaw(data Raw) (ProjectInfo, error) {
	name, err := rawString("project", data, "name")
	if err != nil {
		return ProjectInfo{}, err
	}
	description, err := rawString("project", data, "description")
	if err != nil {
		return ProjectInfo{}, err
	}
	version, err := rawString("project", data, "version")
	if err != nil {
		return ProjectInfo{}, err
	}
	return ProjectInfo{Name: name, Description: description, Version: version}, nil
}

func functionsFromRaw(entries []Raw, isStatic bool) ([]Function, error) {
	var functions []Function
	for _, entry := range entries {
		name, err := rawString("method", entry, "name")
		if err != nil {
			return nil, err
		}
		if _, builtin := builtinVirtualCallbacks[name]; builtin {
			continue
		}
		argEntries, err := rawMapList("method", entry, "arguments")
		if err != nil {
			return nil, err
		}
		if name == typeConstructor && len(argEntries) == 0 {
			continue
		}

		rawDescription, err := rawString("method", entry, "description")
		if err != nil {
			return nil, err
		}
		description, tags, _ := ExtractMetadata(rawDescription)
		isVirtual := hasTag(tags, TagVirtual) && !isStatic
		// A constructor that made it past the zero-argument check stays
		// documented despite its leading underscore.
		if strings.HasPrefix(name, "_") && !isVirtual && name != typeConstructor {
			continue
		}

		signature, err := rawString("method", entry, "signature")
		if err != nil {
			return nil, err
		}
		returnType, err := rawString("method", entry, "return_type")
		if err != nil {
			return nil, err
		}
		arguments, err := argumentsFromRaw(argEntries)
		if err != nil {
			return nil, err
		}

		functions = append(functions, Function{
			Signature:   strings.Replace(signature, "-> null", "-> void", 1),
			Kind:        classifyFunction(isStatic, isVirtual),
			Name:        name,
			Description: strings.Trim(description, " \n"),
			ReturnType:  strings.Replace(returnType, "null", "void", 1),
			Arguments:   arguments,
			RPCMode:     rawInt(entry, "rpc_mode"),
			Tags:        tags,
		})
	}
	return functions, nil
}

func argumentsFromRaw(entries []Raw) ([]Argument, error) {
	arguments := make([]Argument, 0, len(entries))
	for _, entry := range entries {
		name, err := rawString("argument", entry, "name")
		if err != nil {
			return nil, err
		}
		argType, err := rawString("argument", entry, "type")
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, Argument{Name: name, Type: argType})
	}
	return arguments, nil
}

func membersFromRaw(entries []Raw) ([]Member, error) {
	var members []Member
	for _, entry := range entries {
		name, err := rawString("member", entry, "name")
		if err != nil {
			return nil, err
		}
		// Private members are never documented; unlike methods there is no
		// virtual escape hatch.
		if strings.HasPrefix(name, "_") {
			continue
		}
		rawDescription, err := rawString("member", entry, "description")
		if err != nil {
			return nil, err
		}
		description, tags, _ := ExtractMetadata(rawDescription)
		signature, err := rawString("member", entry, "signature")
		if err != nil {
			return nil, err
		}
		dataType, err := rawString("member", entry, "data_type")
		if err != nil {
			return nil, err
		}
		defaultValue, err := rawText("member", entry, "default_value")
		if err != nil {
			return nil, err
		}
		exported, err := rawBool("member", entry, "export")
		if err != nil {
			return nil, err
		}
		setter, err := rawString("member", entry, "setter")
		if err != nil {
			return nil, err
		}
		getter, err := rawString("member", entry, "getter")
		if err != nil {
			return nil, err
		}
		members = append(members, Member{
			Signature:    signature,
			Name:         name,
			Description:  strings.Trim(description, " \n"),
			Type:         dataType,
			DefaultValue: defaultValue,
			IsExported:   exported,
			Setter:       setter,
			Getter:       getter,
			Tags:         tags,
		})
	}
	return members, nil
}

func signalsFromRaw(entries []Raw) ([]Signal, error) {
	var signals []Signal
	for _, entry := range entries {
		signature, err := rawString("signal", entry, "signature")
		if err != nil {
			return nil, err
		}
		name, err := rawString("signal", entry, "name")
		if err != nil {
			return nil, err
		}
		description, err := rawString("signal", entry, "description")
		if err != nil {
			return nil, err
		}
		arguments, err := rawStringList("signal", entry, "arguments")
		if err != nil {
			return nil, err
		}
		signals = append(signals, Signal{
			Signature:   signature,
			Name:        name,
			Description: description,
			Arguments:   arguments,
		})
	}
	return signals, nil
}

// enumsFromRaw promotes Dictionary-typed constants to enumerations. Scalar
// constants are dropped.
func enumsFromRaw(entries []Raw) ([]Enumeration, error) {
	var enums []Enumeration
	for _, entry := range entries {
		dataType, err := rawString("constant", entry, "data_type")
		if err != nil {
			return nil, err
		}
		if dataType != "Dictionary" {
			continue
		}
		signature, err := rawString("constant", entry, "signature")
		if err != nil {
			return nil, err
		}
		name, err := rawString("constant", entry, "name")
		if err != nil {
			return nil, err
		}
		description, err := rawString("constant", entry, "description")
		if err != nil {
			return nil, err
		}
		values, err := rawMap("constant", entry, "value")
		if err != nil {
			return nil, err
		}
		enums = append(enums, Enumeration{
			Signature:   signature,
			Name:        name,
			Description: description,
			Values:      values,
		})
	}
	return enums, nil
}
